package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/svp-client/internal/logger"
)

// App runs a session loop and releases the resources it was given.
type App struct {
	loop   SessionLoop
	closer io.Closer
	logger *logger.Logger
}

// NewApp returns an application around loop. closer, when not nil, is closed
// once Run returns.
func NewApp(loop SessionLoop, closer io.Closer, log *logger.Logger) (*App, error) {
	if loop == nil {
		return nil, errors.New("client: session loop is required")
	}
	return &App{loop: loop, closer: closer, logger: log.WithComponent("app")}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("client started")
	defer a.close()

	if err := a.loop.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			a.logger.Info().Msg("client stopped by context")
			return nil
		}
		return fmt.Errorf("session loop: %w", err)
	}

	a.logger.Info().Msg("client finished")
	return nil
}

func (a *App) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("close resources")
	}
}
