package usecase

import (
	"context"
	"strings"
	"time"

	"weather-task-tracker/internal/model"
	"weather-task-tracker/internal/suggestion"
	"weather-task-tracker/internal/task"
	"weather-task-tracker/pkg/response"
)

// List filters the catalog by mood AND weather, drops entries the caller
// already has a task named after, and caps the result. Catalog order is
// preserved.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input suggestion.ListInput) (suggestion.ListOutput, error) {
	existing, err := uc.existingNames(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List existingNames: %v", err)
		return suggestion.ListOutput{}, err
	}

	out := suggestion.ListOutput{Suggestions: []suggestion.Suggestion{}}
	for _, s := range suggestion.Catalog() {
		if !s.MatchesMood(input.Mood) || !s.MatchesWeather(input.Weather) {
			continue
		}
		if _, taken := existing[strings.ToLower(s.Name)]; taken {
			continue
		}
		out.Suggestions = append(out.Suggestions, s)
		if len(out.Suggestions) == maxSuggestions {
			break
		}
	}
	return out, nil
}

// Accept turns a catalog entry into a real task dated today, stamped with
// the weather active at acceptance time.
func (uc *implUseCase) Accept(ctx context.Context, sc model.Scope, input suggestion.AcceptInput) (suggestion.AcceptOutput, error) {
	entry, ok := suggestion.Lookup(input.Name)
	if !ok {
		return suggestion.AcceptOutput{}, suggestion.ErrUnknownSuggestion
	}

	created, err := uc.tasks.Create(ctx, sc, task.CreateTaskInput{
		Name:        entry.Name,
		Description: entry.Description,
		Date:        uc.now(),
		Weather:     input.Weather,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Accept Create: %v", err)
		return suggestion.AcceptOutput{}, err
	}

	return suggestion.AcceptOutput{Task: created.Task}, nil
}

// existingNames returns the lowercased names of the caller's tasks.
// Anonymous callers have none.
func (uc *implUseCase) existingNames(ctx context.Context, sc model.Scope) (map[string]struct{}, error) {
	if !sc.Authenticated() {
		return map[string]struct{}{}, nil
	}

	listed, err := uc.tasks.List(ctx, sc, task.ListTasksInput{})
	if err != nil {
		return nil, err
	}

	names := make(map[string]struct{}, len(listed.Tasks))
	for _, t := range listed.Tasks {
		names[strings.ToLower(t.Name)] = struct{}{}
	}
	return names, nil
}

func today() string {
	return time.Now().Format(response.DateFormat)
}
