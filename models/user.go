// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the account document returned by GET users/{uid}.
//
// The client only reads the identifier lists; pets and yards referenced here
// are fetched one by one whenever they are displayed or resolved by name.
type User struct {
	// UserID is the server-assigned UUID of the account.
	UserID string `json:"uuid"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Email is the address given at signup.
	Email string `json:"email"`

	// Pets holds the UUIDs of every pet the user owns.
	Pets []string `json:"pets"`

	// OwnedYards holds the UUIDs of yards created by the user.
	OwnedYards []string `json:"owned_pet_yards"`

	// JoinedYards holds the UUIDs of yards the user was added to as a member.
	JoinedYards []string `json:"joined_pet_yards"`

	// JoinedAt is the signup moment in Unix milliseconds.
	JoinedAt int64 `json:"join_timestamp,omitempty"`
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest is the payload of POST auth/signup.
//
// Email and Password carry the client-side rules (see package validators);
// they are only enforced when testing mode is off.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,svpemail"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,strongpassword"`
}

// LoginResponse is the body returned by a successful POST auth/login.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"uuid"`
}
