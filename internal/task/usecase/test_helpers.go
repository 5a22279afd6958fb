package usecase

import (
	"context"

	"weather-task-tracker/internal/task"
	repo "weather-task-tracker/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// mockRepo is a func-field mock of the task repository.
type mockRepo struct {
	createFunc      func(opt repo.CreateTaskOptions) (task.Task, error)
	getOneFunc      func(opt repo.GetOneTaskOptions) (task.Task, error)
	listFunc        func(opt repo.ListTasksOptions) ([]task.Task, error)
	updateFunc      func(opt repo.UpdateTaskOptions) (task.Task, error)
	deleteFunc      func(opt repo.DeleteTaskOptions) error
	completeAllFunc func(userID string) (int64, error)
	deleteByUser    func(userID string) error
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return task.Task{
		ID:          "task-1",
		UserID:      opt.UserID,
		Name:        opt.Name,
		Description: opt.Description,
		Date:        opt.Date,
		Weather:     opt.Weather,
	}, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (task.Task, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return task.Task{}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return task.Task{}, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(opt)
	}
	return nil
}

func (m *mockRepo) CompleteAll(ctx context.Context, userID string) (int64, error) {
	if m.completeAllFunc != nil {
		return m.completeAllFunc(userID)
	}
	return 0, nil
}

func (m *mockRepo) DeleteByUser(ctx context.Context, userID string) error {
	if m.deleteByUser != nil {
		return m.deleteByUser(userID)
	}
	return nil
}
