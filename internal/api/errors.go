package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the request could not be sent or no response
	// arrived (transport failure).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized covers 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers 409 responses (e.g. duplicate email on sign-up).
	ErrConflict = errors.New("already exists")
)

// APIError is a structured error payload returned by the backend. It keeps
// the server-supplied message while still matching the sentinel errors above
// through errors.Is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == 401 || e.StatusCode == 403
	case ErrNotFound:
		return e.StatusCode == 404
	case ErrConflict:
		return e.StatusCode == 409
	}
	return false
}
