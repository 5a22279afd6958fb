package mood

import (
	"github.com/gin-gonic/gin"

	"weather-task-tracker/pkg/log"
)

// Handler is the public interface for the mood cookie endpoints.
type Handler interface {
	Get(c *gin.Context)
	Set(c *gin.Context)
	Reset(c *gin.Context)
}

type handler struct {
	l            log.Logger
	cookieSecure bool
	maxAge       int
}

// New creates the mood handler. maxAgeSeconds is the cookie lifetime; the
// slider value is meant to fade daily.
func New(l log.Logger, cookieSecure bool, maxAgeSeconds int) *handler {
	if maxAgeSeconds <= 0 {
		maxAgeSeconds = 24 * 60 * 60
	}
	return &handler{
		l:            l,
		cookieSecure: cookieSecure,
		maxAge:       maxAgeSeconds,
	}
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	mood := rg.Group("/mood")
	{
		mood.GET("", h.Get)
		mood.PUT("", h.Set)
		mood.DELETE("", h.Reset)
	}
}
