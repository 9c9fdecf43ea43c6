// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other configuration source.
const (
	DefaultServerURL      = "https://localhost:3000/"
	DefaultRequestTimeout = 15 * time.Second
)

// StructuredConfig is the raw configuration container populated by every
// source before merging. Optional booleans are pointers so that an explicit
// "false" from a later source can override an earlier "true".
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds behaviour switches of the session loop.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the HTTP transport to the backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Logger holds the log sink settings.
	Logger Logger `envPrefix:"LOGGER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds behaviour switches of the session loop.
type App struct {
	// Testing relaxes email and password validation during signup.
	// Env: APP_TESTING
	Testing *bool `env:"TESTING"`

	// ArtDir overrides the embedded pet art sheets with <ArtDir>/<species>.txt.
	// Env: APP_ART_DIR
	ArtDir string `env:"ART_DIR"`
}

// Adapter holds settings of the HTTP transport to the backend.
type Adapter struct {
	// ServerURL is the base URL every endpoint path is resolved against.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CACertPath is a PEM file trusted in addition to the system roots; the
	// backend ships a self-signed certificate.
	// Env: ADAPTER_CA_CERT
	CACertPath string `env:"CA_CERT"`

	// Insecure disables TLS certificate verification.
	// Env: ADAPTER_INSECURE
	Insecure *bool `env:"INSECURE"`
}

// Logger holds the log sink settings.
type Logger struct {
	// FilePath is where JSON log lines are appended. Empty means a "logs"
	// file next to the executable.
	// Env: LOGGER_FILE
	FilePath string `env:"FILE"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			ServerURL:      DefaultServerURL,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
