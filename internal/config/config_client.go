package config

import (
	"fmt"
	"time"
)

// ClientApp holds the session loop switches.
type ClientApp struct {
	// Testing relaxes email and password validation for automated runs.
	Testing bool
	// ArtDir optionally overrides the embedded pet art sheets.
	ArtDir string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the backend base URL.
	ServerURL string
	// RequestTimeout is the timeout for a single outbound request.
	RequestTimeout time.Duration
	// CACertPath is an extra trusted root certificate in PEM format.
	CACertPath string
	// InsecureSkipVerify disables TLS verification.
	InsecureSkipVerify bool
}

// ClientLogger holds the log sink settings.
type ClientLogger struct {
	FilePath string
}

// ClientConfig is the explicit configuration object handed to the client at
// construction. Nothing in the client reads configuration from globals.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Logger  ClientLogger
}

// GetClientConfig builds and validates the client configuration from the
// defaults, the environment, the command-line arguments (without the program
// name) and an optional JSON file.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Testing: boolValue(cfg.App.Testing),
			ArtDir:  cfg.App.ArtDir,
		},
		Adapter: ClientAdapter{
			ServerURL:          cfg.Adapter.ServerURL,
			RequestTimeout:     cfg.Adapter.RequestTimeout,
			CACertPath:         cfg.Adapter.CACertPath,
			InsecureSkipVerify: boolValue(cfg.Adapter.Insecure),
		},
		Logger: ClientLogger{
			FilePath: cfg.Logger.FilePath,
		},
	}
}
