// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the session loop to the client services and owns the lifetime of
// the terminal prompter.
package client
