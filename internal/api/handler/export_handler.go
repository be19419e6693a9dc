package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/service"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/response"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar"
)

// ExportHandler serves file downloads.
type ExportHandler struct {
	export service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(export service.ExportService) *ExportHandler {
	return &ExportHandler{export: export}
}

// Attendance handles GET /admin/attendance/:role/export.
func (h *ExportHandler) Attendance(c *gin.Context) {
	role := c.Param("role")
	courseID := c.Query("course_id")
	nim := c.Query("nim")
	nip := c.Query("nip")

	buf, filename, err := h.export.ExportAttendance(c.Request.Context(), role, courseID, nim, nip)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			response.BadRequest(c, "User role is invalid")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ClassTimetable handles GET /admin/classes/:class_id/timetable.ics.
func (h *ExportHandler) ClassTimetable(c *gin.Context) {
	classID := c.Param("class_id")

	buf, filename, err := h.export.ExportClassTimetable(c.Request.Context(), classID)
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			response.BadRequest(c, "Class ID is not valid!")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK, icsContentType, buf.Bytes())
}
