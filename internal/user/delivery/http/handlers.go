package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/middleware"
	"weather-task-tracker/internal/session"
	"weather-task-tracker/pkg/response"
)

// Register godoc
// @Summary     Register an account
// @Description Creates the account and opens a session right away.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     201 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setSessionCookie(c, h.sessions.Create(output.User.ID))
	response.Created(c, authResp{User: newUserResp(output.User)})
}

// Login godoc
// @Summary     Log in
// @Description Checks credentials and opens a session. Unknown email yields USER_NOT_FOUND, wrong password INVALID_PASSWORD.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	h.setSessionCookie(c, h.sessions.Create(output.User.ID))
	response.OK(c, authResp{User: newUserResp(output.User)})
}

// Logout godoc
// @Summary     Log out
// @Description Destroys the session and clears the cookie. Safe to call anonymously.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil {
		h.sessions.Destroy(token)
	}
	h.clearSessionCookie(c)
	response.OK(c, nil)
}

// Me godoc
// @Summary     Current profile
// @Description Returns the caller's profile, or null data for anonymous callers.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} authResp
// @Router      /auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	if !sc.Authenticated() {
		response.OK(c, nil)
		return
	}

	output, err := h.uc.Detail(ctx, sc)
	if err != nil {
		// stale session: the account is gone, drop the cookie too
		h.clearSessionCookie(c)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, authResp{User: newUserResp(output.User)})
}

// UpdateMe godoc
// @Summary     Update profile
// @Description Partial update of name, email, password and preferred location. Location null or "none" clears it.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body updateMeReq true "Fields to update"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /auth/me [PATCH]
func (h *handler) UpdateMe(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	input, err := h.processUpdateMeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateProfile(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateProfile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, authResp{User: newUserResp(output.User)})
}

// DeleteMe godoc
// @Summary     Delete account
// @Description Removes the account with all its tasks and ends the session.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /auth/me [DELETE]
func (h *handler) DeleteMe(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	if err := h.uc.DeleteAccount(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.DeleteAccount: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if token, err := c.Cookie(session.CookieName); err == nil {
		h.sessions.Destroy(token)
	}
	h.clearSessionCookie(c)
	response.OK(c, nil)
}

func (h *handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, int(h.sessionTTL.Seconds()), "/", "", h.cookieSecure, true)
}

func (h *handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", h.cookieSecure, true)
}
