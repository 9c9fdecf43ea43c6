// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/svp-client/internal/adapter"
	"github.com/MKhiriev/svp-client/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain so the UI can still
// show the HTTP status code.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *adapter.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	var business error
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		business = ErrNotAuthorized

	case errors.Is(err, adapter.ErrNotFound):
		switch statusErr.Body {
		case app.MsgPetNotFound:
			business = ErrPetNotFound
		case app.MsgPetYardNotFound:
			business = ErrYardNotFound
		case app.MsgUserNotFound:
			business = ErrUserNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if statusErr.Body == app.MsgUsernameAlreadyExists {
			business = ErrUsernameTaken
		}
	}

	if business == nil {
		return err
	}
	return fmt.Errorf("%w: %w", business, err)
}
