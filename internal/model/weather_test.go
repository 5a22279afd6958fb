package model_test

import (
	"testing"

	"weather-task-tracker/internal/model"
)

func TestConditionFromCode(t *testing.T) {
	t.Run("Rainy Codes", func(t *testing.T) {
		for _, code := range []int{51, 53, 55, 61, 63, 65, 80, 81, 82} {
			if got := model.ConditionFromCode(code); got != model.WeatherRainy {
				t.Errorf("code %d: expected rainy, got %s", code, got)
			}
		}
	})

	t.Run("Cloudy Codes", func(t *testing.T) {
		for _, code := range []int{2, 3} {
			if got := model.ConditionFromCode(code); got != model.WeatherCloudy {
				t.Errorf("code %d: expected cloudy, got %s", code, got)
			}
		}
	})

	t.Run("Everything Else Is Sunny", func(t *testing.T) {
		for _, code := range []int{0, 1, 4, 45, 50, 56, 60, 66, 71, 79, 83, 95, -1, 999} {
			if got := model.ConditionFromCode(code); got != model.WeatherSunny {
				t.Errorf("code %d: expected sunny, got %s", code, got)
			}
		}
	})
}

func TestParseCondition(t *testing.T) {
	for _, s := range []string{"sunny", "cloudy", "rainy"} {
		if _, ok := model.ParseCondition(s); !ok {
			t.Errorf("expected %q to parse", s)
		}
	}
	for _, s := range []string{"", "Sunny", "snowy", "rain"} {
		if _, ok := model.ParseCondition(s); ok {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
