package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/middleware"
	suggestionHTTP "weather-task-tracker/internal/suggestion/delivery/http"
	suggestionUC "weather-task-tracker/internal/suggestion/usecase"
	"weather-task-tracker/internal/task"
)

// setupSuggestionDomain initializes the suggestion domain and registers its
// routes. It builds on the task usecase for dedup and acceptance.
func (srv *HTTPServer) setupSuggestionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks task.UseCase) {
	uc := suggestionUC.New(srv.l, tasks)
	h := suggestionHTTP.New(srv.l, uc)

	suggestionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Suggestion domain registered")
}
