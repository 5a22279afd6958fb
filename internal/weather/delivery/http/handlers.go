package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/middleware"
	"weather-task-tracker/internal/weather"
	"weather-task-tracker/pkg/response"
)

var errMissingCoords = response.NewHTTPError(http.StatusBadRequest, "lat and lon query parameters are required")

// Current godoc
// @Summary     Current weather condition
// @Description Classifies the live condition (sunny/cloudy/rainy) at the given coordinates.
// @Tags        Weather
// @Produce     json
// @Param       lat query number true "Latitude"
// @Param       lon query number true "Longitude"
// @Success     200 {object} currentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Upstream failure"
// @Router      /api/weather [GET]
func (h *handler) Current(c *gin.Context) {
	ctx := c.Request.Context()

	var req currentReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errMissingCoords)
		return
	}

	output, err := h.uc.Current(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Current: %v", err)
		response.Error(c, response.NewHTTPError(http.StatusInternalServerError, "Failed to fetch weather"))
		return
	}

	response.OK(c, currentResp{Condition: string(output.Condition)})
}

// Resolve godoc
// @Summary     Resolve display location
// @Description Picks the place to show weather for: stored preference, then device coordinates, then the default city.
// @Tags        Weather
// @Produce     json
// @Param       location query string false "Explicit place name override"
// @Param       lat      query number false "Device latitude"
// @Param       lon      query number false "Device longitude"
// @Success     200 {object} resolveResp
// @Router      /api/location/resolve [GET]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req resolveReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errMissingCoords)
		return
	}

	input := weather.ResolveInput{
		Location: req.Location,
		Lat:      req.Lat,
		Lon:      req.Lon,
	}

	// no explicit override: fall back to the stored profile preference
	if input.Location == "" && sc.Authenticated() {
		if detail, err := h.users.Detail(ctx, sc); err == nil && detail.User.Location != nil {
			input.Location = *detail.User.Location
		}
	}

	output, err := h.uc.Resolve(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Resolve: %v", err)
		response.Error(c, response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage))
		return
	}

	response.OK(c, newResolveResp(output))
}
