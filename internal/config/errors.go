package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, a server URL without scheme or a zero timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid session loop settings
	// (for example, an art directory that does not exist).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrUnexpectedArguments is returned when positional arguments are given.
	ErrUnexpectedArguments = errors.New("unexpected positional arguments")
)
