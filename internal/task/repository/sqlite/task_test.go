package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"weather-task-tracker/internal/model"
	repo "weather-task-tracker/internal/task/repository"
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

func mustCreate(t *testing.T, r repo.Repository, opt repo.CreateTaskOptions) string {
	t.Helper()
	created, err := r.CreateTask(context.Background(), opt)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	return created.ID
}

func TestCreateAndGetTask(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	id := mustCreate(t, r, repo.CreateTaskOptions{
		UserID:      "u1",
		Name:        "Go for a walk",
		Description: "15 minutes",
		Date:        "2026-08-30",
		Weather:     model.WeatherSunny,
	})

	got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "Go for a walk", got.Name)
	assert.Equal(t, model.WeatherSunny, got.Weather)
	assert.False(t, got.Completed)

	// Scoped to owner: another user must not see it.
	other, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: "u2"})
	require.NoError(t, err)
	assert.Empty(t, other.ID)
}

func TestListTasksFiltersAndOrder(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	mustCreate(t, r, repo.CreateTaskOptions{UserID: "u1", Name: "b", Date: "2026-08-02", Weather: model.WeatherRainy})
	mustCreate(t, r, repo.CreateTaskOptions{UserID: "u1", Name: "a", Date: "2026-08-01", Weather: model.WeatherSunny})
	mustCreate(t, r, repo.CreateTaskOptions{UserID: "u1", Name: "c", Date: "2026-08-03", Weather: model.WeatherCloudy})
	mustCreate(t, r, repo.CreateTaskOptions{UserID: "u2", Name: "other", Date: "2026-08-01", Weather: model.WeatherSunny})

	all, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Ascending by date.
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "b", all[1].Name)
	assert.Equal(t, "c", all[2].Name)

	// Multi-select weather filter.
	wet, err := r.ListTasks(ctx, repo.ListTasksOptions{
		UserID:   "u1",
		Weathers: []model.WeatherCondition{model.WeatherRainy, model.WeatherCloudy},
	})
	require.NoError(t, err)
	require.Len(t, wet, 2)

	completed := false
	pending, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1", Completed: &completed})
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}

func TestUpdateTaskKeepsWeather(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	id := mustCreate(t, r, repo.CreateTaskOptions{
		UserID: "u1", Name: "old", Date: "2026-08-01", Weather: model.WeatherRainy,
	})

	updated, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID: id, UserID: "u1", Name: "new", Description: "d", Date: "2026-08-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Name)
	assert.Equal(t, "2026-08-05", updated.Date)
	assert.Equal(t, model.WeatherRainy, updated.Weather)

	// Unknown/unowned rows update nothing.
	missing, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID: id, UserID: "u2", Name: "x", Date: "2026-08-06",
	})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestCompleteAll(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		mustCreate(t, r, repo.CreateTaskOptions{UserID: "u1", Name: "t", Date: "2026-08-01", Weather: model.WeatherSunny})
	}
	done := true
	id := mustCreate(t, r, repo.CreateTaskOptions{UserID: "u1", Name: "done", Date: "2026-08-01", Weather: model.WeatherSunny})
	_, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: id, UserID: "u1", Name: "done", Date: "2026-08-01", Completed: &done})
	require.NoError(t, err)

	count, err := r.CompleteAll(ctx, "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	remaining := false
	pending, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1", Completed: &remaining})
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDeleteTaskAndCascade(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	id := mustCreate(t, r, repo.CreateTaskOptions{UserID: "u1", Name: "t", Date: "2026-08-01", Weather: model.WeatherSunny})
	mustCreate(t, r, repo.CreateTaskOptions{UserID: "u1", Name: "t2", Date: "2026-08-02", Weather: model.WeatherSunny})

	require.NoError(t, r.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, UserID: "u1"}))
	got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	require.NoError(t, r.DeleteByUser(ctx, "u1"))
	left, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1"})
	require.NoError(t, err)
	assert.Empty(t, left)
}
