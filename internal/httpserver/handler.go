package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"weather-task-tracker/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires the domains. Auth and task routes live at
// the root; weather, mood and suggestion endpoints sit under /api.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	root := srv.gin.Group("")
	api := srv.gin.Group("/api")
	mw := middleware.New(srv.l, srv.sessions, srv.cookieSecure, srv.loginRatePerMin)

	taskUC, taskRepo, err := srv.setupTaskDomain(ctx, root, mw)
	if err != nil {
		return err
	}
	userUC, err := srv.setupUserDomain(ctx, root, mw, taskRepo)
	if err != nil {
		return err
	}
	srv.setupWeatherDomain(ctx, api, mw, userUC)
	srv.setupSuggestionDomain(ctx, api, mw, taskUC)
	srv.setupMoodDomain(ctx, api)

	return nil
}
