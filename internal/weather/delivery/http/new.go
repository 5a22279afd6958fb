package http

import (
	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/user"
	"weather-task-tracker/internal/weather"
	"weather-task-tracker/pkg/log"
)

// Handler is the public interface for the weather HTTP delivery layer.
type Handler interface {
	Current(c *gin.Context)
	Resolve(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    weather.UseCase
	users user.UseCase
}

// New creates a new HTTP handler for the weather domain. users supplies
// the stored preferred location for logged-in callers.
func New(l log.Logger, uc weather.UseCase, users user.UseCase) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		users: users,
	}
}
