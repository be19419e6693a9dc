package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/dto"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/service"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/response"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/session"
)

// CourseHandler serves course registration and the per-class listing.
type CourseHandler struct {
	courses service.CourseService
	sess    *session.Manager
}

// NewCourseHandler creates the CourseHandler.
func NewCourseHandler(courses service.CourseService, sess *session.Manager) *CourseHandler {
	return &CourseHandler{courses: courses, sess: sess}
}

// RegisterForm handles GET /admin/register/course: select options for
// classes, weekdays, lecturers and rooms.
func (h *CourseHandler) RegisterForm(c *gin.Context) {
	options, err := h.courses.RegistrationOptions(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, options)
}

// Register handles POST /admin/register/course.
func (h *CourseHandler) Register(c *gin.Context) {
	var form dto.CourseForm
	_ = c.ShouldBind(&form)
	// Non-numeric SKS/semester stay zero and fail the required-fields
	// rule like any other blank.
	form.SKS, _ = strconv.Atoi(c.PostForm("course_sks"))
	form.Semester, _ = strconv.Atoi(c.PostForm("course_semester"))

	if err := h.courses.Register(c.Request.Context(), &form); err != nil {
		if formErr := asFormError(err); formErr != nil {
			flashAndRedirect(c, h.sess, "danger", "/admin/register/course", formErr.Messages...)
			return
		}
		flashAndRedirect(c, h.sess, "danger", "/admin/register/course",
			"Course registration error. "+err.Error())
		return
	}

	flashAndRedirect(c, h.sess, "success", "/admin/register", "Course successfully registered!")
}

// ListByClass handles GET /admin/classes/:class_id/courses.
func (h *CourseHandler) ListByClass(c *gin.Context) {
	classID := c.Param("class_id")
	if classID == "" {
		response.BadRequest(c, "Class ID is required!")
		return
	}

	courses, err := h.courses.ListByClass(c.Request.Context(), classID)
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			response.BadRequest(c, "Class ID is not valid!")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"courses": courses})
}
