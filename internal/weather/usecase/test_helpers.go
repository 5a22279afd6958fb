package usecase

import (
	"context"
	"errors"
	"time"

	"weather-task-tracker/pkg/openmeteo"
)

// mockLogger is a no-op logger for tests.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Info(ctx context.Context, args ...any)                    {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)    {}
func (mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)    {}
func (mockLogger) Error(ctx context.Context, args ...any)                   {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                   {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                  {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Panic(ctx context.Context, args ...any)                   {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)   {}

// mockMeteo implements openmeteo.IOpenMeteo with overridable functions and
// call counting.
type mockMeteo struct {
	codeFn    func(ctx context.Context, lat, lon float64) (int, error)
	geocodeFn func(ctx context.Context, name string) (openmeteo.Coordinates, bool, error)

	codeCalls    int
	geocodeCalls int
}

func (m *mockMeteo) CurrentWeatherCode(ctx context.Context, lat, lon float64) (int, error) {
	m.codeCalls++
	if m.codeFn != nil {
		return m.codeFn(ctx, lat, lon)
	}
	return 0, errors.New("unexpected CurrentWeatherCode call")
}

func (m *mockMeteo) Geocode(ctx context.Context, name string) (openmeteo.Coordinates, bool, error) {
	m.geocodeCalls++
	if m.geocodeFn != nil {
		return m.geocodeFn(ctx, name)
	}
	return openmeteo.Coordinates{}, false, errors.New("unexpected Geocode call")
}

// mockNominatim implements nominatim.INominatim.
type mockNominatim struct {
	reverseFn func(ctx context.Context, lat, lon float64) (string, error)
}

func (m *mockNominatim) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	if m.reverseFn != nil {
		return m.reverseFn(ctx, lat, lon)
	}
	return "", errors.New("unexpected ReverseGeocode call")
}

func newTestUseCase(meteo *mockMeteo, nom *mockNominatim) *implUseCase {
	if nom == nil {
		nom = &mockNominatim{}
	}
	return New(mockLogger{}, meteo, nom, Config{
		DefaultLocation: "Mexico City",
		CacheTTL:        time.Minute,
		CacheSize:       16,
	})
}
