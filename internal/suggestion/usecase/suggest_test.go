package usecase

import (
	"context"
	"errors"
	"testing"

	"weather-task-tracker/internal/model"
	"weather-task-tracker/internal/suggestion"
	"weather-task-tracker/internal/task"
)

// mockTasks implements task.UseCase with overridable functions.
type mockTasks struct {
	createFn func(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error)
	listFn   func(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error)
}

func (m *mockTasks) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if m.createFn != nil {
		return m.createFn(ctx, sc, input)
	}
	return task.CreateTaskOutput{}, errors.New("unexpected Create call")
}

func (m *mockTasks) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	if m.listFn != nil {
		return m.listFn(ctx, sc, input)
	}
	return task.ListTasksOutput{}, nil
}

func (m *mockTasks) Toggle(ctx context.Context, sc model.Scope, id string) (task.ToggleTaskOutput, error) {
	return task.ToggleTaskOutput{}, errors.New("unexpected Toggle call")
}

func (m *mockTasks) Edit(ctx context.Context, sc model.Scope, input task.EditTaskInput) (task.EditTaskOutput, error) {
	return task.EditTaskOutput{}, errors.New("unexpected Edit call")
}

func (m *mockTasks) Delete(ctx context.Context, sc model.Scope, id string) error {
	return errors.New("unexpected Delete call")
}

func (m *mockTasks) CompleteAll(ctx context.Context, sc model.Scope) (task.CompleteAllOutput, error) {
	return task.CompleteAllOutput{}, errors.New("unexpected CompleteAll call")
}

// mockLogger is a no-op logger for tests.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}

func names(sugs []suggestion.Suggestion) []string {
	out := make([]string, len(sugs))
	for i, s := range sugs {
		out[i] = s.Name
	}
	return out
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestList(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("sad and rainy picks cozy indoor entries", func(t *testing.T) {
		uc := New(mockLogger{}, &mockTasks{})
		out, err := uc.List(ctx, sc, suggestion.ListInput{Mood: model.MoodSad, Weather: model.WeatherRainy})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		got := names(out.Suggestions)
		for _, want := range []string{"Hot tea + reading", "Meditation", "Watch a comfort show"} {
			if !contains(got, want) {
				t.Errorf("missing %q in %v", want, got)
			}
		}
		if contains(got, "Go for a walk") {
			t.Errorf("sunny-only entry offered on a rainy day: %v", got)
		}
	})

	t.Run("both mood and weather must match", func(t *testing.T) {
		uc := New(mockLogger{}, &mockTasks{})
		out, err := uc.List(ctx, sc, suggestion.ListInput{Mood: model.MoodHappy, Weather: model.WeatherSunny})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		got := names(out.Suggestions)
		// neutral-only entry despite matching weather
		if contains(got, "Plan your next day") {
			t.Errorf("mood filter not applied: %v", got)
		}
	})

	t.Run("capped at five", func(t *testing.T) {
		uc := New(mockLogger{}, &mockTasks{})
		// neutral+cloudy matches the most catalog entries
		out, err := uc.List(ctx, sc, suggestion.ListInput{Mood: model.MoodNeutral, Weather: model.WeatherCloudy})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(out.Suggestions) != 5 {
			t.Errorf("got %d suggestions, want 5", len(out.Suggestions))
		}
	})

	t.Run("existing task names are excluded case-insensitively", func(t *testing.T) {
		tasks := &mockTasks{
			listFn: func(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
				return task.ListTasksOutput{Tasks: []task.Task{
					{Name: "HOT TEA + READING"},
					{Name: "meditation"},
				}}, nil
			},
		}
		uc := New(mockLogger{}, tasks)
		out, err := uc.List(ctx, sc, suggestion.ListInput{Mood: model.MoodSad, Weather: model.WeatherRainy})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		got := names(out.Suggestions)
		if contains(got, "Hot tea + reading") || contains(got, "Meditation") {
			t.Errorf("already-added entries offered again: %v", got)
		}
	})

	t.Run("anonymous caller skips the task lookup", func(t *testing.T) {
		tasks := &mockTasks{
			listFn: func(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
				t.Fatal("task list fetched for anonymous caller")
				return task.ListTasksOutput{}, nil
			},
		}
		uc := New(mockLogger{}, tasks)
		out, err := uc.List(ctx, model.Scope{}, suggestion.ListInput{Mood: model.MoodSad, Weather: model.WeatherRainy})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(out.Suggestions) == 0 {
			t.Error("anonymous caller got no suggestions")
		}
	})
}

func TestAccept(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("creates a task dated today with the active weather", func(t *testing.T) {
		var created task.CreateTaskInput
		tasks := &mockTasks{
			createFn: func(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
				created = input
				return task.CreateTaskOutput{Task: task.Task{ID: "t1", Name: input.Name}}, nil
			},
		}
		uc := New(mockLogger{}, tasks)
		uc.now = func() string { return "2026-08-30" }

		out, err := uc.Accept(ctx, sc, suggestion.AcceptInput{Name: "meditation", Weather: model.WeatherRainy})
		if err != nil {
			t.Fatalf("Accept: %v", err)
		}
		if out.Task.ID != "t1" {
			t.Errorf("got task %q, want t1", out.Task.ID)
		}
		if created.Name != "Meditation" || created.Description != "10 minutes" {
			t.Errorf("catalog entry not used: %+v", created)
		}
		if created.Date != "2026-08-30" || created.Weather != model.WeatherRainy {
			t.Errorf("date/weather stamp wrong: %+v", created)
		}
	})

	t.Run("unknown entry", func(t *testing.T) {
		uc := New(mockLogger{}, &mockTasks{})
		_, err := uc.Accept(ctx, sc, suggestion.AcceptInput{Name: "Climb Everest", Weather: model.WeatherSunny})
		if !errors.Is(err, suggestion.ErrUnknownSuggestion) {
			t.Errorf("got %v, want ErrUnknownSuggestion", err)
		}
	})
}
