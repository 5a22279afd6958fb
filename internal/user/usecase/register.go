package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"weather-task-tracker/internal/user"
	repo "weather-task-tracker/internal/user/repository"
)

// Register creates a new account. The caller is expected to open a
// session right away (auto-login).
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.RegisterOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return user.RegisterOutput{}, user.ErrMissingFields
	}
	if len(input.Password) < minPasswordLen {
		return user.RegisterOutput{}, user.ErrPasswordTooShort
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.RegisterOutput{}, err
	}
	if existing.ID != "" {
		return user.RegisterOutput{}, user.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register bcrypt: %v", err)
		return user.RegisterOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.RegisterOutput{}, err
	}

	return user.RegisterOutput{User: created}, nil
}
