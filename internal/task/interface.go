package task

import (
	"context"

	"weather-task-tracker/internal/model"
)

// UseCase is the task domain API. All operations are scoped to the caller.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	Toggle(ctx context.Context, sc model.Scope, id string) (ToggleTaskOutput, error)
	Edit(ctx context.Context, sc model.Scope, input EditTaskInput) (EditTaskOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	CompleteAll(ctx context.Context, sc model.Scope) (CompleteAllOutput, error)
}
