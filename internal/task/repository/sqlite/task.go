package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"weather-task-tracker/internal/model"
	"weather-task-tracker/internal/task"
	repo "weather-task-tracker/internal/task/repository"
)

// taskRow is the persisted shape of a Task.
type taskRow struct {
	ID          string `gorm:"primaryKey"`
	UserID      string `gorm:"index"`
	Name        string
	Description string
	Date        string `gorm:"index"`
	Weather     string
	Completed   bool `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (taskRow) TableName() string { return "tasks" }

func (row taskRow) toDomain() task.Task {
	return task.Task{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Description: row.Description,
		Date:        row.Date,
		Weather:     model.WeatherCondition(row.Weather),
		Completed:   row.Completed,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	row := taskRow{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		Name:        opt.Name,
		Description: opt.Description,
		Date:        opt.Date,
		Weather:     string(opt.Weather),
		Completed:   false,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	return row.toDomain(), nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found — no error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (task.Task, error) {
	q := r.db.WithContext(ctx)
	if opt.ID != "" {
		q = q.Where("id = ?", opt.ID)
	}
	if opt.UserID != "" {
		q = q.Where("user_id = ?", opt.UserID)
	}

	var row taskRow
	err := q.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return row.toDomain(), nil
}

// ListTasks returns the user's tasks matching the filters, date ascending
// by default.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", opt.UserID)

	if len(opt.Weathers) > 0 {
		weathers := make([]string, len(opt.Weathers))
		for i, w := range opt.Weathers {
			weathers[i] = string(w)
		}
		q = q.Where("weather IN ?", weathers)
	}
	if opt.Completed != nil {
		q = q.Where("completed = ?", *opt.Completed)
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "date ASC"
	}

	var rows []taskRow
	if err := q.Order(orderBy).Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	tasks := make([]task.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toDomain()
	}
	return tasks, nil
}

// UpdateTask updates a Task scoped to its owner and returns the updated
// entity. Weather is never part of the update set.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	updates := map[string]any{
		"name":        opt.Name,
		"description": opt.Description,
		"date":        opt.Date,
	}
	if opt.Completed != nil {
		updates["completed"] = *opt.Completed
	}

	res := r.db.WithContext(ctx).
		Model(&taskRow{}).
		Where("id = ? AND user_id = ?", opt.ID, opt.UserID).
		Updates(updates)
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), res.Error)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return task.Task{}, nil
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID, UserID: opt.UserID})
}

// DeleteTask removes a Task scoped to its owner.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", opt.ID, opt.UserID).
		Delete(&taskRow{}).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CompleteAll bulk-marks the user's incomplete tasks as completed.
func (r *implRepository) CompleteAll(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&taskRow{}).
		Where("user_id = ? AND completed = ?", userID, false).
		Update("completed", true)
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteAll"), res.Error)
		return 0, repo.ErrFailedToUpdate
	}
	return res.RowsAffected, nil
}

// DeleteByUser removes every task of the user.
func (r *implRepository) DeleteByUser(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&taskRow{}).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteByUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
