package http

import (
	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Both
// endpoints serve visitors too, so they only resolve the session when one
// is present.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/weather", h.Current)
	rg.GET("/location/resolve", mw.OptionalAuth(), h.Resolve)
}
