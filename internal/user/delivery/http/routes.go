package http

import (
	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Credential endpoints sit behind the per-IP rate limit; /auth/me uses
// OptionalAuth so anonymous callers get a null profile instead of a 401.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", mw.LoginRateLimit(), h.Register)
		auth.POST("/login", mw.LoginRateLimit(), h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", mw.OptionalAuth(), h.Me)
		auth.PATCH("/me", mw.Auth(), h.UpdateMe)
		auth.DELETE("/me", mw.Auth(), h.DeleteMe)
	}
}
