package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/middleware"
	"weather-task-tracker/internal/model"
	"weather-task-tracker/internal/mood"
	"weather-task-tracker/internal/suggestion"
	"weather-task-tracker/pkg/response"
)

var errBadWeather = response.NewHTTPError(http.StatusBadRequest, "weather query parameter must be sunny, cloudy or rainy")

// List godoc
// @Summary     List suggestions
// @Description Returns catalog activities matching the caller's mood (from the mood cookie) and the given weather, minus ones already on the board.
// @Tags        Suggestions
// @Produce     json
// @Param       weather query string true "Active condition (sunny/cloudy/rainy)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/suggestions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errBadWeather)
		return
	}

	moodCat := model.CategoryFromMood(mood.FromCookie(c))
	weatherCond := model.WeatherCondition(req.Weather)

	output, err := h.uc.List(ctx, sc, suggestion.ListInput{
		Mood:    moodCat,
		Weather: weatherCond,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage))
		return
	}

	response.OK(c, newListResp(output, moodCat, weatherCond))
}

// Accept godoc
// @Summary     Accept a suggestion
// @Description Turns a suggested activity into a task dated today, stamped with the given weather.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body acceptReq true "Suggestion to accept"
// @Success     201 {object} acceptResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/suggestions/accept [POST]
func (h *handler) Accept(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req acceptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewHTTPError(http.StatusBadRequest, "name and weather are required"))
		return
	}

	output, err := h.uc.Accept(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Accept: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, acceptResp{Task: taskResp{
		ID:          output.Task.ID,
		Name:        output.Task.Name,
		Description: output.Task.Description,
		Date:        output.Task.Date,
		Weather:     string(output.Task.Weather),
		Completed:   output.Task.Completed,
	}})
}

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case suggestion.ErrUnknownSuggestion:
		return response.NewHTTPError(http.StatusNotFound, "Unknown suggestion")
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
