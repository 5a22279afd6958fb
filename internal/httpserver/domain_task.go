package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/middleware"
	"weather-task-tracker/internal/task"
	taskHTTP "weather-task-tracker/internal/task/delivery/http"
	taskRepo "weather-task-tracker/internal/task/repository"
	taskSQLite "weather-task-tracker/internal/task/repository/sqlite"
	taskUC "weather-task-tracker/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
// The repository is returned too so the user domain can cascade deletes.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (task.UseCase, taskRepo.Repository, error) {
	repo, err := taskSQLite.New(srv.db, srv.l)
	if err != nil {
		return nil, nil, err
	}
	uc := taskUC.New(repo, srv.l)
	h := taskHTTP.New(srv.l, uc)

	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc, repo, nil
}
