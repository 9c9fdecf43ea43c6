// Package config provides configuration loading, merging, and validation
// for the virtual pets client.
//
// Configuration is assembled from several sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (optionally seeded from a .env file)
//  3. Command-line flags
//  4. JSON config file
//
// The entry point is [GetClientConfig], which returns the validated
// [ClientConfig] that is passed into the session loop at construction.
package config
