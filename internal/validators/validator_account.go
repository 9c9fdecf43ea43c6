// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/svp-client/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict Validate to a subset of fields, so
// that an interactive prompt can check one answer at a time.
const (
	// FieldEmail targets SignupRequest.Email.
	FieldEmail = "Email"

	// FieldUsername targets the username of a signup or login payload.
	FieldUsername = "Username"

	// FieldPassword targets the password of a signup or login payload.
	FieldPassword = "Password"
)

// Struct tag names registered with the underlying validator.
const (
	TagEmail          = "svpemail"
	TagStrongPassword = "strongpassword"
)

// AccountValidator validates signup and login payloads.
type AccountValidator struct {
	validate *validator.Validate
}

// NewAccountValidator returns a Validator with the account rules registered.
func NewAccountValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation(TagEmail, func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	_ = v.RegisterValidation(TagStrongPassword, func(fl validator.FieldLevel) bool {
		return CheckPassword(fl.Field().String()).Strong()
	})

	return &AccountValidator{validate: v}
}

// Validate implements Validator for models.SignupRequest and
// models.Credentials (values or pointers). Named fields limit the check.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateStruct(ctx, &value, fields...)
	case *models.SignupRequest:
		return v.validateStruct(ctx, value, fields...)
	case models.Credentials:
		return v.validateStruct(ctx, &value, fields...)
	case *models.Credentials:
		return v.validateStruct(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldEmail, FieldUsername, FieldPassword:
		default:
			return ErrUnknownField
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	return translate(obj, fieldErrs[0])
}

// translate maps the first failing rule to the package's sentinel errors.
func translate(obj any, fe validator.FieldError) error {
	switch {
	case fe.Tag() == TagEmail:
		return ErrInvalidEmail
	case fe.Tag() == TagStrongPassword:
		pw := ""
		if req, ok := obj.(*models.SignupRequest); ok {
			pw = req.Password
		}
		return fmt.Errorf("%w: %s", ErrWeakPassword, CheckPassword(pw))
	case fe.Field() == FieldEmail:
		return ErrInvalidEmail
	case fe.Field() == FieldUsername:
		return ErrEmptyUsername
	case fe.Field() == FieldPassword:
		return ErrEmptyPassword
	default:
		return fmt.Errorf("%s: failed %q", fe.Namespace(), fe.Tag())
	}
}
