package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
)

// Client-facing error messages.
const (
	MsgMissingRequiredFields = "Missing required fields"
	MsgInvalidRequestFormat  = "Invalid request format"
	MsgInvalidDueDate        = "Invalid dueDate"
	MsgRequiredFieldEmpty    = "Required fields cannot be empty"
	MsgTaskNotFound          = "Task not found"
	MsgInternalServerError   = "Internal Server Error"
	MsgRouteNotFound         = "Not found"
	MsgMethodNotAllowed      = "Method not allowed"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return MsgInternalServerError
	case store.IsNotFoundError(err):
		return MsgTaskNotFound
	case errors.Is(err, domain.ErrInvalidDueDate):
		return MsgInvalidDueDate
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return MsgRequiredFieldEmpty
	default:
		return MsgInternalServerError
	}
}

// SanitizeValidationError turns a validator error into a client-facing message.
// A malformed due date wins over missing fields only when nothing is missing.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return MsgInvalidRequestFormat
	}

	message := MsgInvalidRequestFormat
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			return MsgMissingRequiredFields
		case "iso8601":
			message = MsgInvalidDueDate
		}
	}
	return message
}
