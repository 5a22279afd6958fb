package repository

import (
	"context"

	"weather-task-tracker/internal/user"
)

// Repository is the composed interface for the user domain data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (user.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (user.User, error)
	DeleteUser(ctx context.Context, id string) error
}
