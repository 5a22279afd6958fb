package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMissingFields
	}
	return req, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidWeatherFilter
	}
	return req, req.validate()
}

// processEditReq binds and validates the edit request body + URI param.
func (h *handler) processEditReq(c *gin.Context) (editReq, error) {
	var req editReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errNameDateRequired
	}
	req.ID = c.Param("id")
	return req, req.validate()
}
