package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/tick/internal/domain"
	"github.com/phrazzld/tick/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types to
// clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors
	case domain.IsValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error. Save failures land here; after a
	// failed persist the in-memory and on-disk states may disagree, so
	// the caller must treat the operation as failed.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Handlers that know the offending task ID should
// prefer a message naming it; this is the fallback.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case store.IsNotFoundError(err):
		return "Task not found"

	case errors.Is(err, domain.ErrEmptyTitle):
		return "Task title cannot be empty"

	case domain.IsValidationError(err):
		return "Invalid task data"

	default:
		return "An unexpected error occurred"
	}
}
