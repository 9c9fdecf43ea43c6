package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Testing *bool  `json:"testing,omitempty"`
		ArtDir  string `json:"art_dir,omitempty"`
	} `json:"app,omitempty"`

	Adapter struct {
		ServerURL      string   `json:"server_url,omitempty"`
		RequestTimeout Duration `json:"request_timeout,omitempty"`
		CACertPath     string   `json:"ca_cert,omitempty"`
		Insecure       *bool    `json:"insecure,omitempty"`
	} `json:"adapter,omitempty"`

	Logger struct {
		FilePath string `json:"file,omitempty"`
	} `json:"logger,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Testing: jsonCfg.App.Testing,
			ArtDir:  jsonCfg.App.ArtDir,
		},
		Adapter: Adapter{
			ServerURL:      jsonCfg.Adapter.ServerURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			CACertPath:     jsonCfg.Adapter.CACertPath,
			Insecure:       jsonCfg.Adapter.Insecure,
		},
		Logger: Logger{
			FilePath: jsonCfg.Logger.FilePath,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
