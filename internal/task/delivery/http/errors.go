package http

import (
	"net/http"

	"weather-task-tracker/internal/task"
	"weather-task-tracker/pkg/response"
)

// Binding-level errors surfaced before the usecase runs.
var (
	errMissingFields        = response.NewHTTPError(http.StatusBadRequest, "Missing required fields (name, date, weather)")
	errNameDateRequired     = response.NewHTTPError(http.StatusBadRequest, "Name and date are required")
	errInvalidWeatherFilter = response.NewHTTPError(http.StatusBadRequest, "Invalid weather filter")
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return response.NewHTTPError(http.StatusNotFound, "Task not found")
	case task.ErrMissingFields:
		return errMissingFields
	case task.ErrNameDateRequired:
		return errNameDateRequired
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
