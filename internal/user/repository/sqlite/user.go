package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"weather-task-tracker/internal/user"
	repo "weather-task-tracker/internal/user/repository"
)

// userRow is the persisted shape of a User.
type userRow struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Location     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRow) TableName() string { return "users" }

func (row userRow) toDomain() user.User {
	return user.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Location:     row.Location,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	row := userRow{
		ID:           uuid.NewString(),
		Name:         opt.Name,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		Location:     nil,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	return row.toDomain(), nil
}

// GetOneUser retrieves a single User by the provided filters (AND
// condition). Returns zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	q := r.db.WithContext(ctx)
	if opt.ID != "" {
		q = q.Where("id = ?", opt.ID)
	}
	if opt.Email != "" {
		q = q.Where("email = ?", opt.Email)
	}
	if opt.ExcludeID != "" {
		q = q.Where("id <> ?", opt.ExcludeID)
	}

	var row userRow
	err := q.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return row.toDomain(), nil
}

// UpdateUser applies the non-empty fields and returns the updated entity.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (user.User, error) {
	updates := map[string]any{}
	if opt.Name != "" {
		updates["name"] = opt.Name
	}
	if opt.Email != "" {
		updates["email"] = opt.Email
	}
	if opt.PasswordHash != "" {
		updates["password_hash"] = opt.PasswordHash
	}
	if opt.SetLocation {
		updates["location"] = opt.Location
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&userRow{}).
			Where("id = ?", opt.ID).
			Updates(updates).Error; err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
			return user.User{}, repo.ErrFailedToUpdate
		}
	}

	return r.GetOneUser(ctx, repo.GetOneUserOptions{ID: opt.ID})
}

// DeleteUser removes a User by ID.
func (r *implRepository) DeleteUser(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&userRow{}).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
