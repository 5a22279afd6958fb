package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"weather-task-tracker/internal/model"
	"weather-task-tracker/internal/user"
	repo "weather-task-tracker/internal/user/repository"
)

// Detail returns the caller's profile. A stale session (user deleted
// elsewhere) surfaces as ErrUserNotFound.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope) (user.DetailOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return user.DetailOutput{}, err
	}
	if existing.ID == "" {
		return user.DetailOutput{}, user.ErrUserNotFound
	}
	return user.DetailOutput{User: existing}, nil
}

// UpdateProfile applies a partial profile update.
func (uc *implUseCase) UpdateProfile(ctx context.Context, sc model.Scope, input user.UpdateProfileInput) (user.UpdateProfileOutput, error) {
	opt := repo.UpdateUserOptions{ID: sc.UserID}

	if name := strings.TrimSpace(input.Name); name != "" {
		opt.Name = name
	}

	if email := strings.TrimSpace(input.Email); email != "" {
		inUse, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email, ExcludeID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.UpdateProfile GetOneUser: %v", err)
			return user.UpdateProfileOutput{}, err
		}
		if inUse.ID != "" {
			return user.UpdateProfileOutput{}, user.ErrEmailTaken
		}
		opt.Email = email
	}

	if password := strings.TrimSpace(input.Password); password != "" {
		if len(input.Password) < minPasswordLen {
			return user.UpdateProfileOutput{}, user.ErrPasswordTooShort
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
		if err != nil {
			uc.l.Errorf(ctx, "uc.UpdateProfile bcrypt: %v", err)
			return user.UpdateProfileOutput{}, err
		}
		opt.PasswordHash = string(hash)
	}

	if input.LocationProvided {
		opt.SetLocation = true
		opt.Location = normalizeLocation(input.Location)
	}

	updated, err := uc.repo.UpdateUser(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateProfile UpdateUser: %v", err)
		return user.UpdateProfileOutput{}, err
	}
	if updated.ID == "" {
		return user.UpdateProfileOutput{}, user.ErrUserNotFound
	}
	return user.UpdateProfileOutput{User: updated}, nil
}

// DeleteAccount removes every task the user owns, then the user row.
// Tasks go first so a failed cascade leaves the account intact instead
// of orphaning the tasks.
func (uc *implUseCase) DeleteAccount(ctx context.Context, sc model.Scope) error {
	if err := uc.tasks.DeleteByUser(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteAccount cascade: %v", err)
		return err
	}
	if err := uc.repo.DeleteUser(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteAccount DeleteUser: %v", err)
		return err
	}
	return nil
}

// normalizeLocation maps "", "none" (any case) and nil to nil, meaning
// "use device location"; anything else is kept trimmed.
func normalizeLocation(loc *string) *string {
	if loc == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*loc)
	if trimmed == "" || strings.EqualFold(trimmed, "none") {
		return nil
	}
	return &trimmed
}
