package usecase

import (
	"context"
	"fmt"

	"weather-task-tracker/internal/model"
	"weather-task-tracker/internal/weather"
)

// Current classifies the live condition at a coordinate pair. Failures of
// the upstream forecast API surface as ErrWeatherUnavailable.
func (uc *implUseCase) Current(ctx context.Context, input weather.CurrentInput) (weather.CurrentOutput, error) {
	cond, err := uc.conditionAt(ctx, input.Lat, input.Lon)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Current conditionAt: %v", err)
		return weather.CurrentOutput{}, weather.ErrWeatherUnavailable
	}
	return weather.CurrentOutput{Condition: cond}, nil
}

// conditionAt fetches and classifies the condition at lat/lon, going
// through the short-lived cache first.
func (uc *implUseCase) conditionAt(ctx context.Context, lat, lon float64) (model.WeatherCondition, error) {
	key := cacheKey(lat, lon)
	if cond, ok := uc.conditions.Get(key); ok {
		return cond, nil
	}

	code, err := uc.meteo.CurrentWeatherCode(ctx, lat, lon)
	if err != nil {
		return "", err
	}

	cond := model.ConditionFromCode(code)
	uc.conditions.Add(key, cond)
	return cond, nil
}

// cacheKey rounds coordinates to ~1km so nearby lookups share an entry.
func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("%.2f,%.2f", lat, lon)
}
