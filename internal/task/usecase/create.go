package usecase

import (
	"context"
	"strings"

	"weather-task-tracker/internal/model"
	"weather-task-tracker/internal/task"
	repo "weather-task-tracker/internal/task/repository"
)

// Create validates and persists a new Task stamped with the weather
// condition active at creation time.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	name := strings.TrimSpace(input.Name)
	date := strings.TrimSpace(input.Date)
	if name == "" || date == "" || !input.Weather.Valid() {
		return task.CreateTaskOutput{}, task.ErrMissingFields
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:      sc.UserID,
		Name:        name,
		Description: input.Description,
		Date:        date,
		Weather:     input.Weather,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: created}, nil
}
