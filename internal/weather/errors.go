package weather

import "errors"

var (
	ErrWeatherUnavailable = errors.New("weather service unavailable")
)
