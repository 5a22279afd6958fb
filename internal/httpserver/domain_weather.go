package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/middleware"
	"weather-task-tracker/internal/user"
	weatherHTTP "weather-task-tracker/internal/weather/delivery/http"
	weatherUC "weather-task-tracker/internal/weather/usecase"
)

// setupWeatherDomain initializes the weather/location domain and registers
// its routes. users supplies stored location preferences to the resolver.
func (srv *HTTPServer) setupWeatherDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, users user.UseCase) {
	uc := weatherUC.New(srv.l, srv.meteo, srv.nominatim, weatherUC.Config{
		DefaultLocation: srv.defaultLocation,
		CacheTTL:        srv.weatherCacheTTL,
		CacheSize:       srv.weatherCacheSize,
	})
	h := weatherHTTP.New(srv.l, uc, users)

	weatherHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Weather domain registered")
}
