package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultServerURL, cfg.Adapter.ServerURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.False(t, cfg.App.Testing)
	assert.False(t, cfg.Adapter.InsecureSkipVerify)
}

func TestGetClientConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("ADAPTER_SERVER_URL", "http://env:3000/")
	t.Setenv("APP_TESTING", "true")

	cfg, err := GetClientConfig([]string{"--server", "http://flag:3000/", "--testing", "false"})
	require.NoError(t, err)

	assert.Equal(t, "http://flag:3000/", cfg.Adapter.ServerURL)
	assert.False(t, cfg.App.Testing)
}

func TestGetClientConfig_JSONOverridesFlags(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Adapter.ServerURL = "http://json:3000/"
	path := writeTempJSONConfig(t, payload)

	cfg, err := GetClientConfig([]string{"--server", "http://flag:3000/", "--config", path, "--timeout", "2s"})
	require.NoError(t, err)

	assert.Equal(t, "http://json:3000/", cfg.Adapter.ServerURL)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_InvalidArgs(t *testing.T) {
	cfg, err := GetClientConfig([]string{"positional"})
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrUnexpectedArguments)
}

func TestClientConfig_Validate(t *testing.T) {
	dir := t.TempDir()
	certPath := filepath.Join(dir, "cert.pem")
	require.NoError(t, os.WriteFile(certPath, []byte("pem"), 0o600))

	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{ServerURL: "https://localhost:3000/", RequestTimeout: time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"valid", func(c *ClientConfig) {}, nil},
		{"valid with cert and art dir", func(c *ClientConfig) {
			c.Adapter.CACertPath = certPath
			c.App.ArtDir = dir
		}, nil},
		{"empty url", func(c *ClientConfig) { c.Adapter.ServerURL = "" }, ErrInvalidAdapterConfigs},
		{"url without scheme", func(c *ClientConfig) { c.Adapter.ServerURL = "localhost:3000" }, ErrInvalidAdapterConfigs},
		{"ftp scheme", func(c *ClientConfig) { c.Adapter.ServerURL = "ftp://host/" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"missing cert", func(c *ClientConfig) { c.Adapter.CACertPath = filepath.Join(dir, "nope.pem") }, ErrInvalidAdapterConfigs},
		{"missing art dir", func(c *ClientConfig) { c.App.ArtDir = filepath.Join(dir, "nope") }, ErrInvalidAppConfigs},
		{"art dir is a file", func(c *ClientConfig) { c.App.ArtDir = certPath }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
