package api

import (
	"errors"
	"net/http"
)

var (
	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches any 401 the pipeline could not recover from.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden matches a 403 policy denial. Never triggers a refresh.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound matches a 404.
	ErrNotFound = errors.New("not found")
	// ErrSessionExpired is the terminal failure of the refresh-and-retry
	// sequence: the credential has been cleared and the caller must not
	// retry further.
	ErrSessionExpired = errors.New("session expired")
)

// APIError is a structured backend failure. Detail carries the backend's
// human-readable message verbatim when the response body had one.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}

// Is lets callers match APIError values against the package sentinels with
// errors.Is, without inspecting status codes themselves.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}
