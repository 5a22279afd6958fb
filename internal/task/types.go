package task

import (
	"time"

	"weather-task-tracker/internal/model"
)

// --- Task Domain Model ---

// Task is a user-owned daily task. The weather condition is stamped at
// creation time and never changes afterwards — it records the conditions
// the task was created under, not the current ones.
type Task struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Date        string // calendar date, YYYY-MM-DD, no time component
	Weather     model.WeatherCondition
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Name        string
	Description string
	Date        string
	Weather     model.WeatherCondition
}

type ListTasksInput struct {
	// Weathers filters by condition; empty means all. Multiple values are
	// OR-ed together, then AND-ed with the completion filter.
	Weathers  []model.WeatherCondition
	Completed *bool
}

type EditTaskInput struct {
	ID          string
	Name        string
	Description string
	Date        string
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task Task
}

type ListTasksOutput struct {
	Tasks []Task
}

type ToggleTaskOutput struct {
	Task Task
}

type EditTaskOutput struct {
	Task Task
}

type CompleteAllOutput struct {
	ModifiedCount int64
}
