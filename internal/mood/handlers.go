package mood

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/model"
	"weather-task-tracker/pkg/response"
)

var errBadMood = response.NewHTTPError(http.StatusBadRequest, "Mood value must be between 0 and 100")

// Get godoc
// @Summary     Current mood
// @Description Reads the mood slider cookie; absent or malformed values read as the neutral default.
// @Tags        Mood
// @Produce     json
// @Success     200 {object} moodResp
// @Router      /api/mood [GET]
func (h *handler) Get(c *gin.Context) {
	response.OK(c, newMoodResp(FromCookie(c)))
}

// Set godoc
// @Summary     Set mood
// @Description Stores the 0..100 slider value in a cookie that expires after a day.
// @Tags        Mood
// @Accept      json
// @Produce     json
// @Param       body body setReq true "Mood value"
// @Success     200 {object} moodResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/mood [PUT]
func (h *handler) Set(c *gin.Context) {
	var req setReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errBadMood)
		return
	}
	value := *req.Value
	if value < model.MoodMin || value > model.MoodMax {
		response.Error(c, errBadMood)
		return
	}

	h.setMoodCookie(c, value, h.maxAge)
	response.OK(c, newMoodResp(value))
}

// Reset godoc
// @Summary     Reset mood
// @Description Clears the mood cookie; subsequent reads return the neutral default.
// @Tags        Mood
// @Produce     json
// @Success     200 {object} moodResp
// @Router      /api/mood [DELETE]
func (h *handler) Reset(c *gin.Context) {
	h.setMoodCookie(c, model.DefaultMoodValue, -1)
	response.OK(c, newMoodResp(model.DefaultMoodValue))
}

func (h *handler) setMoodCookie(c *gin.Context, value, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	// readable by the frontend slider, so not HttpOnly
	c.SetCookie(CookieName, strconv.Itoa(value), maxAge, "/", "", h.cookieSecure, false)
}
