package http

import (
	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Listing
// works for visitors (no dedup against tasks then); accepting needs an
// account to attach the task to.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	suggestions := rg.Group("/suggestions")
	{
		suggestions.GET("", mw.OptionalAuth(), h.List)
		suggestions.POST("/accept", mw.Auth(), h.Accept)
	}
}
