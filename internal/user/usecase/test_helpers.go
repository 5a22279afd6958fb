package usecase

import (
	"context"
	"errors"

	"weather-task-tracker/internal/user"
	"weather-task-tracker/internal/user/repository"
)

// mockLogger is a no-op logger for tests.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {
}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any) {}

// mockRepo implements repository.Repository with overridable functions.
type mockRepo struct {
	createUserFn func(ctx context.Context, opt repository.CreateUserOptions) (user.User, error)
	getOneUserFn func(ctx context.Context, opt repository.GetOneUserOptions) (user.User, error)
	updateUserFn func(ctx context.Context, opt repository.UpdateUserOptions) (user.User, error)
	deleteUserFn func(ctx context.Context, id string) error
}

func (m *mockRepo) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (user.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, opt)
	}
	return user.User{}, errors.New("unexpected CreateUser call")
}

func (m *mockRepo) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (user.User, error) {
	if m.getOneUserFn != nil {
		return m.getOneUserFn(ctx, opt)
	}
	return user.User{}, nil
}

func (m *mockRepo) UpdateUser(ctx context.Context, opt repository.UpdateUserOptions) (user.User, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(ctx, opt)
	}
	return user.User{}, errors.New("unexpected UpdateUser call")
}

func (m *mockRepo) DeleteUser(ctx context.Context, id string) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, id)
	}
	return errors.New("unexpected DeleteUser call")
}

// mockTaskRemover records cascade calls.
type mockTaskRemover struct {
	deletedFor []string
	err        error
}

func (m *mockTaskRemover) DeleteByUser(ctx context.Context, userID string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedFor = append(m.deletedFor, userID)
	return nil
}

func newTestUseCase(repo repository.Repository, tasks user.TaskRemover) *implUseCase {
	if tasks == nil {
		tasks = &mockTaskRemover{}
	}
	// cost 4 keeps bcrypt fast in tests
	return New(repo, tasks, mockLogger{}, 4)
}
