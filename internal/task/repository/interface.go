package repository

import (
	"context"

	"weather-task-tracker/internal/task"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (task.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (task.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]task.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (task.Task, error)
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) error

	// CompleteAll marks every incomplete task of the user as completed and
	// returns how many rows changed.
	CompleteAll(ctx context.Context, userID string) (int64, error)

	// DeleteByUser removes all tasks of a user (account deletion cascade).
	DeleteByUser(ctx context.Context, userID string) error
}
