// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the virtual pets
// client and the remote pets service.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships a JSON-over-HTTPS
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are returned as [*StatusError] values which unwrap to the
// sentinels defined in errors.go, so callers can use [errors.Is] for
// status-based handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401)
// and [errors.As] when the status code itself must be shown. Connection
// failures wrap [ErrServerUnavailable].
package adapter

import (
	"context"

	"github.com/MKhiriev/svp-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the pets service. Implementations
// are responsible for serialisation, the X-Auth-Key header, and mapping
// transport-level errors to the sentinel values defined in this package.
//
// Every call that addresses a user, pet or yard takes the ids as plain
// strings; they must be UUIDs or [ErrInvalidID] is returned without any
// request being sent.
type ServerAdapter interface {
	// SetToken stores the auth key attached to all subsequent authenticated
	// requests. An empty token clears it.
	SetToken(token string)

	// Token returns the auth key currently stored in the adapter, or an
	// empty string if none is set.
	Token() string

	// Login posts the credentials to auth/login. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Signup posts a new account to auth/signup. A taken username surfaces
	// as [ErrConflict].
	Signup(ctx context.Context, req models.SignupRequest) error

	// Logout invalidates the current token on the server and clears it
	// locally regardless of the outcome.
	Logout(ctx context.Context, userID string) error

	// GetUser fetches the user document.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// DeleteUser removes the account.
	DeleteUser(ctx context.Context, userID string) error

	// GetPet fetches a single pet.
	GetPet(ctx context.Context, userID, petID string) (models.Pet, error)

	// CreatePet creates a pet and returns the server document, including the
	// newly assigned id.
	CreatePet(ctx context.Context, userID string, req models.NewPetRequest) (models.Pet, error)

	// UpdatePet applies a partial update to a pet. No menu action renames or
	// moves pets; the call completes the backend's pet endpoints.
	UpdatePet(ctx context.Context, userID, petID string, upd models.PetUpdate) error

	// DeletePet removes a pet.
	DeletePet(ctx context.Context, userID, petID string) error

	// FeedPet feeds a pet, resetting its hunger clock.
	FeedPet(ctx context.Context, userID, petID string) error

	// GetYard fetches a single yard.
	GetYard(ctx context.Context, userID, yardID string) (models.Yard, error)

	// CreateYard creates a yard owned by the user.
	CreateYard(ctx context.Context, userID string, req models.NewYardRequest) (models.Yard, error)

	// UpdateYard applies a partial update to a yard. Not used by the menus;
	// kept so every yard endpoint has a client call.
	UpdateYard(ctx context.Context, userID, yardID string, upd models.YardUpdate) error

	// DeleteYard removes a yard. Member pets are not touched.
	DeleteYard(ctx context.Context, userID, yardID string) error

	// AddPetToYard attaches an existing pet to a yard.
	AddPetToYard(ctx context.Context, userID, yardID, petID string) error

	// RemovePetFromYard detaches a pet from a yard. Deleting a pet already
	// removes it from its yard on the server, so the menus never call it.
	RemovePetFromYard(ctx context.Context, userID, yardID, petID string) error
}
