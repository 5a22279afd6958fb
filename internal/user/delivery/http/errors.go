package http

import (
	"net/http"

	"weather-task-tracker/internal/user"
	"weather-task-tracker/pkg/response"
)

// Binding-level errors surfaced before the usecase runs.
var (
	errMissingFields = response.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	errBadBody       = response.NewHTTPError(http.StatusBadRequest, "Invalid request body")
)

// mapError translates domain/use-case errors into HTTP errors. The
// not-found vs wrong-password split is deliberate: the frontend offers
// signup only for unknown emails.
func (h *handler) mapError(err error) error {
	switch err {
	case user.ErrUserNotFound:
		return response.NewHTTPError(http.StatusNotFound, "USER_NOT_FOUND")
	case user.ErrInvalidPassword:
		return response.NewHTTPError(http.StatusUnauthorized, "INVALID_PASSWORD")
	case user.ErrEmailTaken:
		return response.NewHTTPError(http.StatusBadRequest, "Email already in use")
	case user.ErrPasswordTooShort:
		return response.NewHTTPError(http.StatusBadRequest, "Password must be at least 8 characters")
	case user.ErrMissingFields:
		return errMissingFields
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
