package http

import (
	"github.com/gin-gonic/gin"

	"weather-task-tracker/internal/middleware"
	"weather-task-tracker/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task stamped with the weather condition active right now.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks filtered by weather and completion, date ascending. Visitors get an empty list.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       weather   query []string false "Weather filter (sunny/cloudy/rainy), repeatable" collectionFormat(multi)
// @Param       completed query bool     false "Completion filter"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Toggle godoc
// @Summary     Toggle task completion
// @Description Flips the completed flag of a task owned by the caller.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} toggleResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /tasks/{id} [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")

	output, err := h.uc.Toggle(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// Edit godoc
// @Summary     Edit a task
// @Description Updates name/description/date. The stamped weather condition is immutable.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Task ID"
// @Param       body body editReq true "Fields to update"
// @Success     200 {object} editResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /tasks/{id}/edit [PATCH]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Edit(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Edit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEditResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task owned by the caller.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CompleteAll godoc
// @Summary     Complete all tasks
// @Description Marks every incomplete task of the caller as completed and returns the affected count.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Success     200 {object} completeAllResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /tasks/complete-all [PATCH]
func (h *handler) CompleteAll(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.CompleteAll(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteAll: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompleteAllResp(output))
}
