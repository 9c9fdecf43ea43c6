// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"os"
)

// validate checks that the merged [ClientConfig] can drive the client.
func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.ServerURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: server url %q must be an absolute http(s) URL", ErrInvalidAdapterConfigs, cfg.Adapter.ServerURL)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.CACertPath != "" {
		if _, err := os.Stat(cfg.Adapter.CACertPath); err != nil {
			return fmt.Errorf("%w: ca certificate: %v", ErrInvalidAdapterConfigs, err)
		}
	}

	if cfg.App.ArtDir != "" {
		info, err := os.Stat(cfg.App.ArtDir)
		if err != nil {
			return fmt.Errorf("%w: art directory: %v", ErrInvalidAppConfigs, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: art directory %q is not a directory", ErrInvalidAppConfigs, cfg.App.ArtDir)
		}
	}

	return nil
}
