package http

import (
	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/user"
)

// processRegisterReq binds and validates the registration body.
func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMissingFields
	}
	return req, nil
}

// processLoginReq binds and validates the login body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMissingFields
	}
	return req, nil
}

// processUpdateMeReq binds the partial profile update body.
func (h *handler) processUpdateMeReq(c *gin.Context) (user.UpdateProfileInput, error) {
	var req updateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return user.UpdateProfileInput{}, errBadBody
	}
	return req.toInput()
}
