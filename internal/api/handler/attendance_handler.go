package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/service"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/response"
)

// AttendanceHandler serves the attendance-log JSON endpoints the admin
// pages fetch.
type AttendanceHandler struct {
	attendance service.AttendanceService
}

// NewAttendanceHandler creates the AttendanceHandler.
func NewAttendanceHandler(attendance service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// List handles GET /admin/attendance/:role?course_id=. The page also
// renders a course filter dropdown, so the options ride along.
func (h *AttendanceHandler) List(c *gin.Context) {
	role := c.Param("role")
	courseID := c.Query("course_id")

	records, err := h.attendance.ListLogs(c.Request.Context(), role, courseID, "", "")
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			response.BadRequest(c, "User role is invalid")
			return
		}
		response.InternalError(c)
		return
	}

	courses, err := h.attendance.CourseOptions(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"attendance": records, "courses": courses})
}

// Detail handles GET /admin/attendance/:role/detail?nim=&nip=.
func (h *AttendanceHandler) Detail(c *gin.Context) {
	role := c.Param("role")
	nim := c.Query("nim")
	nip := c.Query("nip")

	records, err := h.attendance.Detail(c.Request.Context(), role, nim, nip)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIdentityRequired):
			response.BadRequest(c, "You've to provide the student nim or lecturer nip in query parameters")
		case errors.Is(err, service.ErrInvalidRole):
			response.BadRequest(c, "User role is invalid")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"attendance_detail": records})
}
