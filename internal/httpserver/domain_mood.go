package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/mood"
)

// setupMoodDomain registers the mood cookie endpoints. The mood is purely
// client-state, so there is no repository or usecase behind it.
func (srv *HTTPServer) setupMoodDomain(ctx context.Context, api *gin.RouterGroup) {
	h := mood.New(srv.l, srv.cookieSecure, int(srv.moodCookieMaxAge.Seconds()))
	mood.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Mood endpoints registered")
}
