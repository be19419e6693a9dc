package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/service"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/response"
)

// ClassHandler serves the class overview.
type ClassHandler struct {
	classes service.ClassService
}

// NewClassHandler creates the ClassHandler.
func NewClassHandler(classes service.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// List handles GET /admin/classes.
func (h *ClassHandler) List(c *gin.Context) {
	summaries, err := h.classes.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"classes": summaries})
}
