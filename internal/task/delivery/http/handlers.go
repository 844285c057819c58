package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mariasoturna/AssistenteVirtual/internal/task"
	"github.com/mariasoturna/AssistenteVirtual/pkg/response"
)

// ExecuteCommand godoc
// @Summary     Execute a natural language command
// @Description Interprets a Portuguese sentence and runs the resulting action. Without confirm, write actions return a preview.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "Command"
// @Success     200 {object} commandResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/command [POST]
func (h *handler) ExecuteCommand(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommandReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExecuteCommand(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExecuteCommand: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCommandResp(output))
}

// Interpret godoc
// @Summary     Interpret a sentence without executing it
// @Description Returns the structured intent extracted from the sentence. No calendar call is made.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body interpretReq true "Sentence"
// @Success     200 {object} intentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/interpret [POST]
func (h *handler) Interpret(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInterpretReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	intent, err := h.interp.ExtractIntent(ctx, req.Sentence)
	if err != nil {
		h.l.Errorf(ctx, "interp.ExtractIntent: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newIntentResp(intent))
}

// List godoc
// @Summary     List upcoming tasks
// @Description Returns tasks in the window with optional category/priority/text filters. Defaults to the next seven days.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       from     query string false "Window start (DD/MM/YYYY)"
// @Param       to       query string false "Window end (DD/MM/YYYY)"
// @Param       category query string false "Filter by category (trabalho/pessoal/estudo/geral)"
// @Param       priority query string false "Filter by priority (alta/média/baixa/normal)"
// @Param       query    query string false "Free text filter"
// @Param       limit    query int    false "Max results"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Patches one task. All fields are optional; category and priority changes rewrite the stored color and title prefix. Without confirm, returns a preview.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes one task. Without confirm, returns a preview of the task that would be removed.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       id      path  string true  "Task ID"
// @Param       confirm query bool   false "Authorize the removal"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	confirm := c.Query("confirm") == "true"

	output, err := h.uc.Delete(ctx, task.DeleteInput{ID: id, Confirm: confirm})
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDeleteResp(output))
}

// ScheduleMeeting godoc
// @Summary     Schedule a meeting
// @Description Checks the requested slot against the calendar. Busy slots return the conflict plus up to three free alternatives within working hours.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body meetingReq true "Meeting"
// @Success     200 {object} meetingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/meetings [POST]
func (h *handler) ScheduleMeeting(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMeetingReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ScheduleMeeting(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleMeeting: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newMeetingResp(output))
}
