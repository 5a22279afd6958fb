package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"weather-task-tracker/internal/user"
	repo "weather-task-tracker/internal/user/repository"
)

// Login checks credentials. Unknown email and wrong password are distinct
// errors: the frontend switches to signup mode only on ErrUserNotFound.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return user.LoginOutput{}, user.ErrMissingFields
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.LoginOutput{}, err
	}
	if existing.ID == "" {
		return user.LoginOutput{}, user.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(input.Password)); err != nil {
		return user.LoginOutput{}, user.ErrInvalidPassword
	}

	return user.LoginOutput{User: existing}, nil
}
