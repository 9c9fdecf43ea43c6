package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrServerUnavailable = errors.New("server unavailable")
	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidAddress    = errors.New("invalid server address")
)

// StatusError is returned for every non-2xx response. Code is the HTTP status
// and Body the trimmed plain-text body the service sent (e.g. "Pet not found").
type StatusError struct {
	Code int
	Body string

	kind error
}

func (e *StatusError) Error() string {
	text := e.Body
	if text == "" {
		text = http.StatusText(e.Code)
	}
	if e.kind != nil {
		return fmt.Sprintf("%s (%d): %s", e.kind, e.Code, text)
	}
	return fmt.Sprintf("http %d: %s", e.Code, text)
}

// NewStatusError builds the error for a response with the given status code
// and body.
func NewStatusError(code int, body string) *StatusError {
	return &StatusError{Code: code, Body: body, kind: statusSentinels[code]}
}

// Unwrap exposes the status sentinel so errors.Is(err, ErrNotFound) works.
func (e *StatusError) Unwrap() error {
	return e.kind
}

// StatusCode returns the HTTP status carried by err, or 0 when err holds no
// [*StatusError].
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return 0
}
