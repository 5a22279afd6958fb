package suggestion

import (
	"weather-task-tracker/internal/model"
	"weather-task-tracker/internal/task"
)

// Suggestion is one rule-based activity from the built-in catalog. It is
// offered when the caller's mood AND the active weather both match.
type Suggestion struct {
	Name        string
	Description string
	Reason      string
	Moods       []model.MoodCategory
	Weathers    []model.WeatherCondition
}

// MatchesMood reports whether the suggestion applies to the mood.
func (s Suggestion) MatchesMood(mood model.MoodCategory) bool {
	for _, m := range s.Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// MatchesWeather reports whether the suggestion applies to the condition.
func (s Suggestion) MatchesWeather(cond model.WeatherCondition) bool {
	for _, w := range s.Weathers {
		if w == cond {
			return true
		}
	}
	return false
}

// --- UseCase Inputs ---

type ListInput struct {
	Mood    model.MoodCategory
	Weather model.WeatherCondition
}

// AcceptInput names a catalog entry to turn into a real task, stamped
// with the weather active at acceptance time.
type AcceptInput struct {
	Name    string
	Weather model.WeatherCondition
}

// --- UseCase Outputs ---

type ListOutput struct {
	Suggestions []Suggestion
}

type AcceptOutput struct {
	Task task.Task
}
