package usecase

import (
	"context"

	"weather-task-tracker/internal/model"
	"weather-task-tracker/internal/task"
	repo "weather-task-tracker/internal/task/repository"
)

// List returns the caller's tasks, date ascending. Anonymous callers get
// an empty list — visitors see an empty board, not an error.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	if !sc.Authenticated() {
		return task.ListTasksOutput{Tasks: []task.Task{}}, nil
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:    sc.UserID,
		Weathers:  input.Weathers,
		Completed: input.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{Tasks: tasks}, nil
}
