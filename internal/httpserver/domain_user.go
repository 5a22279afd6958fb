package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/middleware"
	"weather-task-tracker/internal/user"
	userHTTP "weather-task-tracker/internal/user/delivery/http"
	userSQLite "weather-task-tracker/internal/user/repository/sqlite"
	userUC "weather-task-tracker/internal/user/usecase"
)

// setupUserDomain initializes the auth/profile domain and registers its
// routes. tasks is the task repository used for the delete cascade.
func (srv *HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks user.TaskRemover) (user.UseCase, error) {
	repo, err := userSQLite.New(srv.db, srv.l)
	if err != nil {
		return nil, err
	}
	uc := userUC.New(repo, tasks, srv.l, srv.bcryptCost)
	h := userHTTP.New(srv.l, uc, srv.sessions, srv.cookieSecure, srv.sessionTTL)

	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return uc, nil
}
