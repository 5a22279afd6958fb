package mood

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/model"
)

// CookieName is the client-side mood slider cookie. The value is the raw
// 0..100 slider position; it is not tied to an account.
const CookieName = "Mood"

// FromCookie reads the mood value from the request cookie, falling back
// to the neutral default when absent or malformed.
func FromCookie(c *gin.Context) int {
	raw, err := c.Cookie(CookieName)
	if err != nil {
		return model.DefaultMoodValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < model.MoodMin || value > model.MoodMax {
		return model.DefaultMoodValue
	}
	return value
}

// --- DTOs ---

type setReq struct {
	Value *int `json:"value" binding:"required"`
}

type moodResp struct {
	Value    int    `json:"value"`
	Category string `json:"category"`
}

func newMoodResp(value int) moodResp {
	return moodResp{
		Value:    value,
		Category: string(model.CategoryFromMood(value)),
	}
}
