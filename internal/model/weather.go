package model

// WeatherCondition is the coarse weather category tasks and suggestions
// work with.
type WeatherCondition string

const (
	WeatherSunny  WeatherCondition = "sunny"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRainy  WeatherCondition = "rainy"
)

// Open-Meteo WMO weather codes that map to rain (drizzle, rain, showers).
var rainyCodes = map[int]struct{}{
	51: {}, 53: {}, 55: {},
	61: {}, 63: {}, 65: {},
	80: {}, 81: {}, 82: {},
}

// ConditionFromCode maps a numeric weather code to a condition.
// Total: any unknown or malformed code degrades to sunny.
func ConditionFromCode(code int) WeatherCondition {
	if _, ok := rainyCodes[code]; ok {
		return WeatherRainy
	}
	if code == 2 || code == 3 {
		return WeatherCloudy
	}
	return WeatherSunny
}

// ParseCondition validates a condition string coming from clients.
func ParseCondition(s string) (WeatherCondition, bool) {
	switch WeatherCondition(s) {
	case WeatherSunny, WeatherCloudy, WeatherRainy:
		return WeatherCondition(s), true
	}
	return "", false
}

// Valid reports whether the condition is one of the three known categories.
func (w WeatherCondition) Valid() bool {
	_, ok := ParseCondition(string(w))
	return ok
}
