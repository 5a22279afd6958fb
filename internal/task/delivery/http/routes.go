package http

import (
	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// complete-all is registered before the :id routes so the static segment
// wins; listing is open to visitors and renders an empty board for them.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.PATCH("/complete-all", mw.Auth(), h.CompleteAll)
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.OptionalAuth(), h.List)
		tasks.PATCH("/:id", mw.Auth(), h.Toggle)
		tasks.PATCH("/:id/edit", mw.Auth(), h.Edit)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
