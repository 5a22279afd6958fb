package usecase

import (
	"context"
	"strings"

	"weather-task-tracker/internal/weather"
)

// Resolve walks the location fallback chain:
//
//  1. A preferred place name wins. Its coordinates come from forward
//     geocoding; the name shown stays the one the caller gave, even when
//     the condition cannot be fetched. A name that geocoding does not
//     know is NOT replaced by a fallback.
//  2. Without a name, device coordinates are used and reverse geocoding
//     supplies the display name.
//  3. With neither, the configured default city is resolved like a
//     preferred name.
//
// Network failures at any step degrade the answer (Resolved=false)
// rather than erroring, so the board always renders.
func (uc *implUseCase) Resolve(ctx context.Context, input weather.ResolveInput) (weather.ResolveOutput, error) {
	if name := strings.TrimSpace(input.Location); name != "" {
		return uc.resolveByName(ctx, name), nil
	}

	if input.Lat != nil && input.Lon != nil {
		return uc.resolveByCoords(ctx, *input.Lat, *input.Lon), nil
	}

	return uc.resolveByName(ctx, uc.defaultLocation), nil
}

func (uc *implUseCase) resolveByName(ctx context.Context, name string) weather.ResolveOutput {
	out := weather.ResolveOutput{Location: name}

	coords, found, err := uc.meteo.Geocode(ctx, name)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Resolve geocode %q: %v", name, err)
		return out
	}
	if !found {
		return out
	}

	cond, err := uc.conditionAt(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Resolve conditionAt %q: %v", name, err)
		return out
	}

	out.Condition = cond
	out.Resolved = true
	return out
}

// resolveByCoords fetches the condition at the device position. The name
// comes from reverse geocoding only; when that yields nothing the name
// stays unset rather than mislabeling the position with another place.
func (uc *implUseCase) resolveByCoords(ctx context.Context, lat, lon float64) weather.ResolveOutput {
	var out weather.ResolveOutput

	if name, err := uc.nominatim.ReverseGeocode(ctx, lat, lon); err != nil {
		uc.l.Warnf(ctx, "uc.Resolve reverse geocode: %v", err)
	} else if name != "" {
		out.Location = name
	}

	cond, err := uc.conditionAt(ctx, lat, lon)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Resolve conditionAt coords: %v", err)
		return out
	}

	out.Condition = cond
	out.Resolved = true
	return out
}
