package middleware

import (
	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/model"
	"weather-task-tracker/internal/session"
	"weather-task-tracker/pkg/response"
)

const scopeKey = "scope"

// Auth requires a live session. Requests without one are rejected with the
// 401 envelope the frontend uses to open the login modal.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := m.resolveScope(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(scopeKey, scope)
		c.Next()
	}
}

// OptionalAuth resolves the session when present but lets anonymous
// requests through with an empty scope. Used by listing endpoints that
// render an empty state for visitors.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if scope, ok := m.resolveScope(c); ok {
			c.Set(scopeKey, scope)
		}
		c.Next()
	}
}

func (m Middleware) resolveScope(c *gin.Context) (model.Scope, bool) {
	token, err := c.Cookie(session.CookieName)
	if err != nil {
		return model.Scope{}, false
	}
	return m.sessions.Get(token)
}

// GetScope returns the scope stored by Auth/OptionalAuth. The zero Scope
// means anonymous.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if scope, ok := v.(model.Scope); ok {
			return scope
		}
	}
	return model.Scope{}
}
