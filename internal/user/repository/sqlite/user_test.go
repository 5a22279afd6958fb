package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	repo "weather-task-tracker/internal/user/repository"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, args ...any)  {}

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	r, err := New(db, noopLogger{})
	require.NoError(t, err)
	return r
}

func TestCreateAndGetUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateUser(ctx, repo.CreateUserOptions{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "$2a$10$hash",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Nil(t, created.Location)

	byID, err := r.GetOneUser(ctx, repo.GetOneUserOptions{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", byID.Email)

	byEmail, err := r.GetOneUser(ctx, repo.GetOneUserOptions{Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	missing, err := r.GetOneUser(ctx, repo.GetOneUserOptions{Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestGetOneUserExcludeID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateUser(ctx, repo.CreateUserOptions{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "h",
	})
	require.NoError(t, err)

	// the caller's own email must not count as taken
	self, err := r.GetOneUser(ctx, repo.GetOneUserOptions{
		Email:     "ana@example.com",
		ExcludeID: created.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, self.ID)
}

func TestUpdateUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateUser(ctx, repo.CreateUserOptions{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "h",
	})
	require.NoError(t, err)

	t.Run("partial fields", func(t *testing.T) {
		updated, err := r.UpdateUser(ctx, repo.UpdateUserOptions{
			ID:   created.ID,
			Name: "Ana Maria",
		})
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", updated.Name)
		assert.Equal(t, "ana@example.com", updated.Email)
	})

	t.Run("set and clear location", func(t *testing.T) {
		loc := "Berlin"
		updated, err := r.UpdateUser(ctx, repo.UpdateUserOptions{
			ID:          created.ID,
			SetLocation: true,
			Location:    &loc,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Location)
		assert.Equal(t, "Berlin", *updated.Location)

		cleared, err := r.UpdateUser(ctx, repo.UpdateUserOptions{
			ID:          created.ID,
			SetLocation: true,
			Location:    nil,
		})
		require.NoError(t, err)
		assert.Nil(t, cleared.Location)
	})

	t.Run("no fields is a plain read", func(t *testing.T) {
		same, err := r.UpdateUser(ctx, repo.UpdateUserOptions{ID: created.ID})
		require.NoError(t, err)
		assert.Equal(t, created.ID, same.ID)
	})
}

func TestDeleteUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateUser(ctx, repo.CreateUserOptions{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "h",
	})
	require.NoError(t, err)

	require.NoError(t, r.DeleteUser(ctx, created.ID))

	gone, err := r.GetOneUser(ctx, repo.GetOneUserOptions{ID: created.ID})
	require.NoError(t, err)
	assert.Empty(t, gone.ID)
}
