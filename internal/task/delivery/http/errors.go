package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mariasoturna/AssistenteVirtual/internal/task"
	"github.com/mariasoturna/AssistenteVirtual/pkg/response"
)

var errInvalidDate = errors.New("invalid date, expected DD/MM/YYYY")

// respondError translates domain errors into the HTTP envelope. Validation
// failures are 400, a missing task is 404, everything else is 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyCommand),
		errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidTaskID),
		errors.Is(err, task.ErrNothingToPatch):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
