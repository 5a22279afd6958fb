package http

import (
	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/suggestion"
	"weather-task-tracker/pkg/log"
)

// Handler is the public interface for the suggestion HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Accept(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc suggestion.UseCase
}

// New creates a new HTTP handler for the suggestion domain.
func New(l log.Logger, uc suggestion.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
