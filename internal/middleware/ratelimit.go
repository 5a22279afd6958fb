package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"weather-task-tracker/pkg/response"
)

// LoginRateLimit throttles credential endpoints per client IP so password
// guessing cannot run at wire speed.
func (m Middleware) LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		limiter, ok := m.loginLimiter.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(m.loginLimit, m.loginBurst)
			m.loginLimiter.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "login rate limit exceeded for %s", ip)
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many attempts, try again later",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
