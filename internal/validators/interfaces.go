// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides client-side input validation for the virtual
// pets client.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - PasswordStrength: the five-part password report shown to the user when
//     a signup password is rejected.
//
// Rules are declared as go-playground/validator struct tags on the models
// (svpemail, strongpassword) and registered here, so the same rule serves
// both whole-struct validation and single-field prompts.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
