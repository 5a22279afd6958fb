package openmeteo

import "context"

// IOpenMeteo defines the Open-Meteo operations used by the weather domain.
// Implementations are safe for concurrent use.
type IOpenMeteo interface {
	// CurrentWeatherCode returns the current WMO weather code at the location.
	CurrentWeatherCode(ctx context.Context, lat, lon float64) (int, error)

	// Geocode resolves a place name to coordinates (first match).
	// The bool is false when the service knows no such place.
	Geocode(ctx context.Context, name string) (Coordinates, bool, error)
}
