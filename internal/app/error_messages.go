// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// virtual pets client.
//
// The Msg* constants are the plain-text bodies the pets service writes into
// its error responses. The service layer matches on them to tell apart
// failures that share a status code (e.g. a missing pet and a missing yard
// are both 404).
package app

const (
	// MsgUnauthorized is returned when the X-Auth-Key header is missing,
	// expired or does not belong to the addressed user.
	MsgUnauthorized = "Unauthorized"

	// MsgUserCreated acknowledges a successful signup.
	MsgUserCreated = "User created"

	// MsgUsernameAlreadyExists is returned by signup with status 409.
	MsgUsernameAlreadyExists = "Username already exists"

	// MsgUserNotFound is returned when the addressed user does not exist.
	MsgUserNotFound = "User not found"

	// MsgPetNotFound is returned when the addressed pet does not exist.
	MsgPetNotFound = "Pet not found"

	// MsgPetYardNotFound is returned when the addressed yard does not exist.
	MsgPetYardNotFound = "Pet yard not found"
)
