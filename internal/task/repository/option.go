package repository

import "weather-task-tracker/internal/model"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID      string
	Name        string
	Description string
	Date        string
	Weather     model.WeatherCondition
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter parameters for listing Tasks.
type ListTasksOptions struct {
	UserID    string
	Weathers  []model.WeatherCondition
	Completed *bool
	OrderBy   string
}

// UpdateTaskOptions holds parameters for updating an existing Task.
// Weather is deliberately absent: the stamped condition is immutable.
type UpdateTaskOptions struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Date        string
	Completed   *bool
}

// DeleteTaskOptions identifies the Task to remove, scoped to its owner.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}
