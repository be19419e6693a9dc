package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/service"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/session"
)

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth       *AuthHandler
	Student    *StudentHandler
	Lecturer   *LecturerHandler
	Course     *CourseHandler
	Class      *ClassHandler
	Attendance *AttendanceHandler
	Export     *ExportHandler
}

// NewHandler wires the handlers.
func NewHandler(svc *service.Service, sess *session.Manager) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth, sess),
		Student:    NewStudentHandler(svc.User, svc.Class, sess),
		Lecturer:   NewLecturerHandler(svc.User, sess),
		Course:     NewCourseHandler(svc.Course, sess),
		Class:      NewClassHandler(svc.Class),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Export:     NewExportHandler(svc.Export),
	}
}

// flashAndRedirect queues notices and sends the browser back to a page.
// Form posts always answer with 303 so the follow-up is a GET.
func flashAndRedirect(c *gin.Context, sess *session.Manager, level, location string, messages ...string) {
	_ = sess.AddFlash(c.Writer, c.Request, level, messages...)
	c.Redirect(http.StatusSeeOther, location)
}

// asFormError unwraps a validation failure, nil for other errors.
func asFormError(err error) *service.FormError {
	var formErr *service.FormError
	if errors.As(err, &formErr) {
		return formErr
	}
	return nil
}
