package user

import (
	"context"

	"weather-task-tracker/internal/model"
)

// UseCase is the auth/profile domain API.
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Detail(ctx context.Context, sc model.Scope) (DetailOutput, error)
	UpdateProfile(ctx context.Context, sc model.Scope, input UpdateProfileInput) (UpdateProfileOutput, error)

	// DeleteAccount removes the user and cascades to all owned tasks.
	DeleteAccount(ctx context.Context, sc model.Scope) error
}

// TaskRemover is the slice of the task domain the account-deletion cascade
// needs.
type TaskRemover interface {
	DeleteByUser(ctx context.Context, userID string) error
}
