package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"weather-task-tracker/internal/session"
	"weather-task-tracker/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l            log.Logger
	sessions     *session.Manager
	cookieSecure bool

	loginLimit   rate.Limit
	loginBurst   int
	loginLimiter *lru.Cache[string, *rate.Limiter]
}

// New creates the middleware set. loginRatePerMin bounds login/register
// attempts per client IP.
func New(l log.Logger, sessions *session.Manager, cookieSecure bool, loginRatePerMin int) Middleware {
	if loginRatePerMin <= 0 {
		loginRatePerMin = 10
	}
	limiters, _ := lru.New[string, *rate.Limiter](1024)

	return Middleware{
		l:            l,
		sessions:     sessions,
		cookieSecure: cookieSecure,
		loginLimit:   rate.Limit(float64(loginRatePerMin) / 60.0),
		loginBurst:   loginRatePerMin,
		loginLimiter: limiters,
	}
}
