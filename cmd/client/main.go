package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/svp-client/internal/adapter"
	"github.com/MKhiriev/svp-client/internal/art"
	"github.com/MKhiriev/svp-client/internal/client"
	"github.com/MKhiriev/svp-client/internal/config"
	"github.com/MKhiriev/svp-client/internal/logger"
	"github.com/MKhiriev/svp-client/internal/service"
	"github.com/MKhiriev/svp-client/internal/tui"
	"github.com/MKhiriev/svp-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		bootstrap := logger.NewLogger("svp-client", os.Stderr)
		bootstrap.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("svp-client", cfg.Logger.FilePath)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	gallery, err := art.NewGallery(cfg.App.ArtDir)
	if err != nil {
		log.Fatal().Err(err).Msg("load pet art")
	}

	services := service.NewClientServices(serverAdapter, gallery, cfg.App.Testing, log)

	prompter := tui.NewTerminalPrompter(os.Stdin, os.Stdout)
	loop := tui.New(services, gallery, prompter, os.Stdout, log)

	app, err := client.NewApp(loop, prompter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
