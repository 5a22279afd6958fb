package suggestion

import (
	"strings"

	"weather-task-tracker/internal/model"
)

// catalog is the built-in rule base, grouped by the weather it fits.
// Order matters: List keeps it when picking what to show.
var catalog = []Suggestion{
	// sunny
	{
		Name:        "Go for a walk",
		Description: "15 minutes",
		Reason:      "Mood: Happy & good weather",
		Moods:       []model.MoodCategory{model.MoodHappy},
		Weathers:    []model.WeatherCondition{model.WeatherSunny},
	},
	{
		Name:        "Short run",
		Description: "15 minutes",
		Reason:      "Sunny motivation",
		Moods:       []model.MoodCategory{model.MoodHappy, model.MoodNeutral},
		Weathers:    []model.WeatherCondition{model.WeatherSunny},
	},
	{
		Name:        "Go outside",
		Description: "20 minutes",
		Reason:      "Beautiful weather",
		Moods:       []model.MoodCategory{model.MoodNeutral, model.MoodHappy},
		Weathers:    []model.WeatherCondition{model.WeatherSunny},
	},
	{
		Name:        "Stretching session",
		Description: "10 minutes",
		Reason:      "Light movement under the sun",
		Moods:       []model.MoodCategory{model.MoodNeutral, model.MoodHappy},
		Weathers:    []model.WeatherCondition{model.WeatherSunny},
	},
	{
		Name:        "Morning sunlight break",
		Description: "5 minutes",
		Reason:      "Boost your energy",
		Moods:       []model.MoodCategory{model.MoodSad, model.MoodNeutral},
		Weathers:    []model.WeatherCondition{model.WeatherSunny},
	},
	{
		Name:        "Listen to music outdoors",
		Description: "15 minutes",
		Reason:      "Enjoy the sunny vibe",
		Moods:       []model.MoodCategory{model.MoodHappy},
		Weathers:    []model.WeatherCondition{model.WeatherSunny},
	},

	// cloudy
	{
		Name:        "Read a book",
		Description: "20 minutes",
		Reason:      "Cloudy day activity",
		Moods:       []model.MoodCategory{model.MoodNeutral, model.MoodSad},
		Weathers:    []model.WeatherCondition{model.WeatherCloudy},
	},
	{
		Name:        "Organize workspace",
		Description: "10 minutes",
		Reason:      "Feeling productive",
		Moods:       []model.MoodCategory{model.MoodHappy, model.MoodNeutral},
		Weathers:    []model.WeatherCondition{model.WeatherCloudy, model.WeatherSunny},
	},
	{
		Name:        "Write a short journal entry",
		Description: "10 minutes",
		Reason:      "Clear your mind",
		Moods:       []model.MoodCategory{model.MoodNeutral, model.MoodSad},
		Weathers:    []model.WeatherCondition{model.WeatherCloudy},
	},
	{
		Name:        "Plan weekly goals",
		Description: "15 minutes",
		Reason:      "Structured thinking",
		Moods:       []model.MoodCategory{model.MoodNeutral},
		Weathers:    []model.WeatherCondition{model.WeatherCloudy},
	},
	{
		Name:        "Watch an educational video",
		Description: "20 minutes",
		Reason:      "Learn something new",
		Moods:       []model.MoodCategory{model.MoodNeutral, model.MoodHappy},
		Weathers:    []model.WeatherCondition{model.WeatherCloudy},
	},
	{
		Name:        "Inbox cleanup",
		Description: "10 minutes",
		Reason:      "Reduce digital clutter",
		Moods:       []model.MoodCategory{model.MoodNeutral},
		Weathers:    []model.WeatherCondition{model.WeatherCloudy},
	},

	// rainy
	{
		Name:        "Hot tea + reading",
		Description: "20 minutes",
		Reason:      "Rainy day mood",
		Moods:       []model.MoodCategory{model.MoodSad, model.MoodNeutral},
		Weathers:    []model.WeatherCondition{model.WeatherRainy},
	},
	{
		Name:        "Clean your room",
		Description: "15 minutes",
		Reason:      "Indoor activity",
		Moods:       []model.MoodCategory{model.MoodNeutral, model.MoodSad},
		Weathers:    []model.WeatherCondition{model.WeatherRainy, model.WeatherCloudy},
	},
	{
		Name:        "Meditation",
		Description: "10 minutes",
		Reason:      "Calm your mind",
		Moods:       []model.MoodCategory{model.MoodSad, model.MoodNeutral},
		Weathers:    []model.WeatherCondition{model.WeatherRainy},
	},
	{
		Name:        "Light indoor workout",
		Description: "15 minutes",
		Reason:      "Move despite the rain",
		Moods:       []model.MoodCategory{model.MoodNeutral, model.MoodHappy},
		Weathers:    []model.WeatherCondition{model.WeatherRainy},
	},
	{
		Name:        "Watch a comfort show",
		Description: "30 minutes",
		Reason:      "Cozy rainy moment",
		Moods:       []model.MoodCategory{model.MoodSad},
		Weathers:    []model.WeatherCondition{model.WeatherRainy},
	},
	{
		Name:        "Cook something warm",
		Description: "30 minutes",
		Reason:      "Comfort food time",
		Moods:       []model.MoodCategory{model.MoodNeutral, model.MoodHappy},
		Weathers:    []model.WeatherCondition{model.WeatherRainy},
	},

	// any weather
	{
		Name:        "Plan your next day",
		Description: "10 minutes",
		Reason:      "Neutral planning",
		Moods:       []model.MoodCategory{model.MoodNeutral},
		Weathers:    []model.WeatherCondition{model.WeatherSunny, model.WeatherCloudy, model.WeatherRainy},
	},
	{
		Name:        "Review your goals",
		Description: "10 minutes",
		Reason:      "Stay on track",
		Moods:       []model.MoodCategory{model.MoodNeutral, model.MoodHappy},
		Weathers:    []model.WeatherCondition{model.WeatherSunny, model.WeatherCloudy},
	},
	{
		Name:        "Deep breathing exercise",
		Description: "5 minutes",
		Reason:      "Reset your focus",
		Moods:       []model.MoodCategory{model.MoodSad, model.MoodNeutral},
		Weathers:    []model.WeatherCondition{model.WeatherSunny, model.WeatherCloudy, model.WeatherRainy},
	},
}

// Catalog returns the full rule base in display order.
func Catalog() []Suggestion {
	return catalog
}

// Lookup finds a catalog entry by name, case-insensitively.
func Lookup(name string) (Suggestion, bool) {
	for _, s := range catalog {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Suggestion{}, false
}
