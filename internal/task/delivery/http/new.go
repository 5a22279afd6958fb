package http

import (
	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/task"
	"weather-task-tracker/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Toggle(c *gin.Context)
	Edit(c *gin.Context)
	Delete(c *gin.Context)
	CompleteAll(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
