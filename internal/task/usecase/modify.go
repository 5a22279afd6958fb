package usecase

import (
	"context"
	"strings"

	"weather-task-tracker/internal/model"
	"weather-task-tracker/internal/task"
	repo "weather-task-tracker/internal/task/repository"
)

// Toggle flips the completion flag of a task owned by the caller.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (task.ToggleTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle GetOneTask: %v", err)
		return task.ToggleTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.ToggleTaskOutput{}, task.ErrTaskNotFound
	}

	flipped := !existing.Completed
	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Name:        existing.Name,
		Description: existing.Description,
		Date:        existing.Date,
		Completed:   &flipped,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle UpdateTask: %v", err)
		return task.ToggleTaskOutput{}, err
	}
	return task.ToggleTaskOutput{Task: updated}, nil
}

// Edit updates name/description/date of a task owned by the caller.
// The stamped weather condition is never touched.
func (uc *implUseCase) Edit(ctx context.Context, sc model.Scope, input task.EditTaskInput) (task.EditTaskOutput, error) {
	name := strings.TrimSpace(input.Name)
	date := strings.TrimSpace(input.Date)
	if name == "" || date == "" {
		return task.EditTaskOutput{}, task.ErrNameDateRequired
	}

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Edit GetOneTask: %v", err)
		return task.EditTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.EditTaskOutput{}, task.ErrTaskNotFound
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Name:        name,
		Description: input.Description,
		Date:        date,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Edit UpdateTask: %v", err)
		return task.EditTaskOutput{}, err
	}
	return task.EditTaskOutput{Task: updated}, nil
}

// Delete removes a task owned by the caller.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

// CompleteAll marks every incomplete task of the caller as completed.
func (uc *implUseCase) CompleteAll(ctx context.Context, sc model.Scope) (task.CompleteAllOutput, error) {
	count, err := uc.repo.CompleteAll(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompleteAll: %v", err)
		return task.CompleteAllOutput{}, err
	}
	return task.CompleteAllOutput{ModifiedCount: count}, nil
}
