package nominatim

import "context"

// INominatim defines the reverse-geocoding operation used by the weather
// domain. Implementations are safe for concurrent use.
type INominatim interface {
	// ReverseGeocode returns a human-readable place name for the
	// coordinates, preferring city over town over village over state.
	// An empty string means the service had no usable name.
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}
