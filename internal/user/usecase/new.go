package usecase

import (
	"weather-task-tracker/internal/user"
	"weather-task-tracker/internal/user/repository"
	"weather-task-tracker/pkg/log"
)

// Minimum password length accepted at registration and password change.
const minPasswordLen = 8

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo       repository.Repository
	tasks      user.TaskRemover
	l          log.Logger
	bcryptCost int
}

// New creates a new user UseCase implementation. tasks is used for the
// account-deletion cascade.
func New(repo repository.Repository, tasks user.TaskRemover, l log.Logger, bcryptCost int) *implUseCase {
	if bcryptCost <= 0 {
		bcryptCost = 10
	}
	return &implUseCase{
		repo:       repo,
		tasks:      tasks,
		l:          l,
		bcryptCost: bcryptCost,
	}
}
