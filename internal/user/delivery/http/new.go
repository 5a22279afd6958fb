package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/session"
	"weather-task-tracker/internal/user"
	"weather-task-tracker/pkg/log"
)

// Handler is the public interface for the auth/profile HTTP delivery layer.
type Handler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
	UpdateMe(c *gin.Context)
	DeleteMe(c *gin.Context)
}

type handler struct {
	l            log.Logger
	uc           user.UseCase
	sessions     *session.Manager
	cookieSecure bool
	sessionTTL   time.Duration
}

// New creates a new HTTP handler for the user domain. The handler owns the
// session cookie lifecycle: login/register set it, logout/delete clear it.
func New(l log.Logger, uc user.UseCase, sessions *session.Manager, cookieSecure bool, sessionTTL time.Duration) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		sessions:     sessions,
		cookieSecure: cookieSecure,
		sessionTTL:   sessionTTL,
	}
}
