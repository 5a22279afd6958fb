package model_test

import (
	"testing"

	"weather-task-tracker/internal/model"
)

func TestCategoryFromMood(t *testing.T) {
	cases := []struct {
		value int
		want  model.MoodCategory
	}{
		{0, model.MoodSad},
		{20, model.MoodSad},
		{35, model.MoodSad},  // upper sad boundary
		{36, model.MoodNeutral},
		{50, model.MoodNeutral},
		{74, model.MoodNeutral}, // upper neutral boundary
		{75, model.MoodHappy},
		{100, model.MoodHappy},
	}

	for _, tc := range cases {
		if got := model.CategoryFromMood(tc.value); got != tc.want {
			t.Errorf("mood %d: expected %s, got %s", tc.value, tc.want, got)
		}
	}
}
