package usecase

import (
	"context"
	"errors"
	"testing"

	"weather-task-tracker/internal/model"
	"weather-task-tracker/internal/task"
	repo "weather-task-tracker/internal/task/repository"
)

func existingTask() task.Task {
	return task.Task{
		ID:          "t1",
		UserID:      "u1",
		Name:        "Read a book",
		Description: "20 minutes",
		Date:        "2026-08-30",
		Weather:     model.WeatherCloudy,
		Completed:   false,
	}
}

func TestToggle(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("Not Found", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		_, err := uc.Toggle(context.Background(), sc, "missing")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Flips Completion", func(t *testing.T) {
		var captured repo.UpdateTaskOptions
		r := &mockRepo{
			getOneFunc: func(opt repo.GetOneTaskOptions) (task.Task, error) {
				return existingTask(), nil
			},
			updateFunc: func(opt repo.UpdateTaskOptions) (task.Task, error) {
				captured = opt
				tk := existingTask()
				tk.Completed = *opt.Completed
				return tk, nil
			},
		}
		uc := New(r, &mockLogger{})
		out, err := uc.Toggle(context.Background(), sc, "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.Completed == nil || *captured.Completed != true {
			t.Errorf("expected completed=true in update")
		}
		if !out.Task.Completed {
			t.Errorf("expected toggled task returned")
		}
	})
}

func TestEdit(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("Name And Date Required", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		_, err := uc.Edit(context.Background(), sc, task.EditTaskInput{ID: "t1", Name: "", Date: "2026-08-30"})
		if !errors.Is(err, task.ErrNameDateRequired) {
			t.Errorf("expected ErrNameDateRequired, got %v", err)
		}
		_, err = uc.Edit(context.Background(), sc, task.EditTaskInput{ID: "t1", Name: "x", Date: " "})
		if !errors.Is(err, task.ErrNameDateRequired) {
			t.Errorf("expected ErrNameDateRequired, got %v", err)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		_, err := uc.Edit(context.Background(), sc, task.EditTaskInput{ID: "missing", Name: "x", Date: "2026-08-30"})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Weather Never In Update Set", func(t *testing.T) {
		var captured repo.UpdateTaskOptions
		r := &mockRepo{
			getOneFunc: func(opt repo.GetOneTaskOptions) (task.Task, error) {
				return existingTask(), nil
			},
			updateFunc: func(opt repo.UpdateTaskOptions) (task.Task, error) {
				captured = opt
				tk := existingTask()
				tk.Name = opt.Name
				tk.Date = opt.Date
				return tk, nil
			},
		}
		uc := New(r, &mockLogger{})
		out, err := uc.Edit(context.Background(), sc, task.EditTaskInput{
			ID: "t1", Name: "Renamed", Description: "new desc", Date: "2026-09-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// UpdateTaskOptions has no weather field at all; the stored
		// condition must survive the edit.
		if captured.Completed != nil {
			t.Errorf("edit must not touch completion")
		}
		if out.Task.Weather != model.WeatherCloudy {
			t.Errorf("expected weather preserved, got %s", out.Task.Weather)
		}
	})
}

func TestDelete(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("Not Found", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		err := uc.Delete(context.Background(), sc, "missing")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Deletes Owned Task", func(t *testing.T) {
		deleted := false
		r := &mockRepo{
			getOneFunc: func(opt repo.GetOneTaskOptions) (task.Task, error) {
				return existingTask(), nil
			},
			deleteFunc: func(opt repo.DeleteTaskOptions) error {
				deleted = true
				if opt.UserID != "u1" {
					t.Errorf("expected owner scoping")
				}
				return nil
			},
		}
		uc := New(r, &mockLogger{})
		if err := uc.Delete(context.Background(), sc, "t1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted {
			t.Errorf("expected repository delete call")
		}
	})
}

func TestCompleteAll(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	r := &mockRepo{
		completeAllFunc: func(userID string) (int64, error) {
			if userID != "u1" {
				t.Errorf("expected owner scoping, got %q", userID)
			}
			return 3, nil
		},
	}
	uc := New(r, &mockLogger{})
	out, err := uc.CompleteAll(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ModifiedCount != 3 {
		t.Errorf("expected modifiedCount 3, got %d", out.ModifiedCount)
	}
}

func TestListAnonymous(t *testing.T) {
	uc := New(&mockRepo{
		listFunc: func(opt repo.ListTasksOptions) ([]task.Task, error) {
			t.Errorf("repository must not be hit for anonymous list")
			return nil, nil
		},
	}, &mockLogger{})

	out, err := uc.List(context.Background(), model.Scope{}, task.ListTasksInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Tasks) != 0 {
		t.Errorf("expected empty list for anonymous caller")
	}
}
