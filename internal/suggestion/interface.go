package suggestion

import (
	"context"

	"weather-task-tracker/internal/model"
)

// UseCase is the activity-suggestion domain API.
type UseCase interface {
	// List returns catalog entries matching both mood and weather, minus
	// the ones the caller already has a task for.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Accept turns a catalog entry into a task dated today.
	Accept(ctx context.Context, sc model.Scope, input AcceptInput) (AcceptOutput, error)
}
