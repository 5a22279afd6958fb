package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrMissingFields    = errors.New("missing required fields (name, date, weather)")
	ErrNameDateRequired = errors.New("name and date are required")
)
