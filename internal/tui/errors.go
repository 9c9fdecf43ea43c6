// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/svp-client/internal/adapter"
	"github.com/MKhiriev/svp-client/internal/service"
)

// errCanceled ends an action the user backed out of by answering "no" or
// leaving a prompt blank.
var errCanceled = errors.New("action canceled")

// errAccountDeleted ends the loop after a successful account deletion.
var errAccountDeleted = errors.New("account deleted")

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the server is unavailable"
	}
	if strings.Contains(s, "certificate") || strings.Contains(s, "x509") {
		return "Could not verify the server certificate (see --ca-cert or --insecure)"
	}

	return err.Error()
}

// describeError turns a service error into the line shown to the user.
// Business errors print their own message; anything else falls back to the
// full chain.
func describeError(err error) string {
	for _, known := range []error{
		service.ErrWrongCredentials,
		service.ErrUsernameTaken,
		service.ErrNotAuthorized,
		service.ErrUserNotFound,
		service.ErrYardNotFound,
		service.ErrPetNotFound,
		service.ErrYardNameTaken,
		service.ErrPetNameTaken,
		service.ErrAttachPetFailed,
	} {
		if errors.Is(err, known) {
			return capitalize(known.Error())
		}
	}

	if errors.Is(err, adapter.ErrServerUnavailable) {
		return humanizeServerUnavailableError(err)
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
