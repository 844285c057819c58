package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	assistant := rg.Group("/assistant")
	{
		assistant.POST("/command", h.ExecuteCommand)
		assistant.POST("/interpret", h.Interpret)
		assistant.GET("/tasks", h.List)
		assistant.PUT("/tasks/:id", h.Update)
		assistant.DELETE("/tasks/:id", h.Delete)
		assistant.POST("/meetings", h.ScheduleMeeting)
	}
}
