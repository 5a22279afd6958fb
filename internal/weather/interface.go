package weather

import "context"

// UseCase is the weather/location domain API.
type UseCase interface {
	// Current classifies the live condition at a coordinate pair.
	// Upstream failures surface as errors.
	Current(ctx context.Context, input CurrentInput) (CurrentOutput, error)

	// Resolve walks the location fallback chain (preferred name, device
	// coordinates, default city) and returns the best place name with the
	// condition there. Network failures downgrade the result instead of
	// erroring.
	Resolve(ctx context.Context, input ResolveInput) (ResolveOutput, error)
}
