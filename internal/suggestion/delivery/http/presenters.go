package http

import (
	"weather-task-tracker/internal/model"
	"weather-task-tracker/internal/suggestion"
)

// --- Request DTOs ---

type listReq struct {
	Weather string `form:"weather" binding:"required,oneof=sunny cloudy rainy"`
}

type acceptReq struct {
	Name    string `json:"name"    binding:"required"`
	Weather string `json:"weather" binding:"required,oneof=sunny cloudy rainy"`
}

func (r acceptReq) toInput() suggestion.AcceptInput {
	return suggestion.AcceptInput{
		Name:    r.Name,
		Weather: model.WeatherCondition(r.Weather),
	}
}

// --- Response DTOs ---

type suggestionResp struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
	Reason      string `json:"reason"`
}

type listResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
	Mood        string           `json:"mood"`
	Weather     string           `json:"weather"`
}

func newListResp(out suggestion.ListOutput, mood model.MoodCategory, weather model.WeatherCondition) listResp {
	sugs := make([]suggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		sugs[i] = suggestionResp{
			Name:        s.Name,
			Description: s.Description,
			Reason:      s.Reason,
		}
	}
	return listResp{
		Suggestions: sugs,
		Mood:        string(mood),
		Weather:     string(weather),
	}
}

type acceptResp struct {
	Task taskResp `json:"task"`
}

type taskResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"desc"`
	Date        string `json:"date"`
	Weather     string `json:"weather"`
	Completed   bool   `json:"completed"`
}
