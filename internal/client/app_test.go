package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/svp-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loopFunc func(ctx context.Context) error

func (f loopFunc) Run(ctx context.Context) error { return f(ctx) }

type countingCloser struct{ closed int }

func (c *countingCloser) Close() error {
	c.closed++
	return nil
}

func TestNewApp_RequiresLoop(t *testing.T) {
	_, err := NewApp(nil, nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		loopErr error
		wantErr error
	}{
		{name: "clean exit", loopErr: nil, wantErr: nil},
		{name: "canceled", loopErr: context.Canceled, wantErr: nil},
		{name: "failure", loopErr: boom, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closer := &countingCloser{}
			app, err := NewApp(loopFunc(func(context.Context) error { return tt.loopErr }), closer, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			// ресурсы освобождаются при любом исходе
			assert.Equal(t, 1, closer.closed)
		})
	}
}

func TestApp_RunWithoutCloser(t *testing.T) {
	app, err := NewApp(loopFunc(func(context.Context) error { return nil }), nil, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, app.Run(context.Background()))
}
