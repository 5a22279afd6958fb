package usecase

import (
	"weather-task-tracker/internal/task"
	"weather-task-tracker/pkg/log"
)

// maxSuggestions caps how many entries List returns at once; the panel
// shows at most this many cards.
const maxSuggestions = 5

type implUseCase struct {
	l     log.Logger
	tasks task.UseCase

	// now is swappable in tests; Accept dates tasks with it.
	now func() string
}

// New creates a new suggestion UseCase implementation.
func New(l log.Logger, tasks task.UseCase) *implUseCase {
	return &implUseCase{
		l:     l,
		tasks: tasks,
		now:   today,
	}
}
