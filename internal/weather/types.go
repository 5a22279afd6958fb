package weather

import "weather-task-tracker/internal/model"

// ResolveInput describes what the caller knows about where they are.
// Location is the preferred place name (stored on the profile or passed
// explicitly); the coordinate pair is the device position when the browser
// shared one. Either or both may be absent.
type ResolveInput struct {
	Location string
	Lat      *float64
	Lon      *float64
}

// ResolveOutput is the resolved place plus the live condition there.
// Resolved is false when the place name is known but no condition could be
// fetched for it; Condition is empty in that case.
type ResolveOutput struct {
	Location  string
	Condition model.WeatherCondition
	Resolved  bool
}

// CurrentInput is a bare coordinate pair for the condition proxy.
type CurrentInput struct {
	Lat float64
	Lon float64
}

// CurrentOutput is the classified live condition at a point.
type CurrentOutput struct {
	Condition model.WeatherCondition
}
