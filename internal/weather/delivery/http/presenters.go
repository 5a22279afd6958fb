package http

import (
	"weather-task-tracker/internal/weather"
)

// --- Request DTOs ---

type currentReq struct {
	Lat *float64 `form:"lat" binding:"required"`
	Lon *float64 `form:"lon" binding:"required"`
}

func (r currentReq) toInput() weather.CurrentInput {
	return weather.CurrentInput{Lat: *r.Lat, Lon: *r.Lon}
}

type resolveReq struct {
	Location string   `form:"location"`
	Lat      *float64 `form:"lat"`
	Lon      *float64 `form:"lon"`
}

// --- Response DTOs ---

type currentResp struct {
	Condition string `json:"condition"`
}

type resolveResp struct {
	Location  string `json:"location,omitempty"`
	Condition string `json:"condition,omitempty"`
	Resolved  bool   `json:"resolved"`
}

func newResolveResp(out weather.ResolveOutput) resolveResp {
	return resolveResp{
		Location:  out.Location,
		Condition: string(out.Condition),
		Resolved:  out.Resolved,
	}
}
