package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/dto"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/service"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/response"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/session"
)

// StudentHandler serves student registration and edits.
type StudentHandler struct {
	users   service.UserService
	classes service.ClassService
	sess    *session.Manager
}

// NewStudentHandler creates the StudentHandler.
func NewStudentHandler(users service.UserService, classes service.ClassService, sess *session.Manager) *StudentHandler {
	return &StudentHandler{users: users, classes: classes, sess: sess}
}

// RegisterForm handles GET /admin/register/student: the class options
// the form renders its select from.
func (h *StudentHandler) RegisterForm(c *gin.Context) {
	classes, err := h.classes.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	ids := make([]string, 0, len(classes))
	for _, class := range classes {
		ids = append(ids, class.ClassID)
	}
	response.OK(c, gin.H{"classes": ids})
}

// Register handles POST /admin/register/student.
func (h *StudentHandler) Register(c *gin.Context) {
	var form dto.StudentForm
	_ = c.ShouldBind(&form)

	if err := h.users.RegisterStudent(c.Request.Context(), &form); err != nil {
		if formErr := asFormError(err); formErr != nil {
			flashAndRedirect(c, h.sess, "danger", "/admin/register/student", formErr.Messages...)
			return
		}
		flashAndRedirect(c, h.sess, "danger", "/admin/register/student",
			"Student registration error. "+err.Error())
		return
	}

	flashAndRedirect(c, h.sess, "success", "/admin/register", "Student successfully registered!")
}

// Edit handles POST /admin/students/:nim.
func (h *StudentHandler) Edit(c *gin.Context) {
	nim := c.Param("nim")

	var form dto.StudentForm
	_ = c.ShouldBind(&form)
	if form.NIM == "" {
		form.NIM = nim
	}

	if err := h.users.EditStudent(c.Request.Context(), nim, &form); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			flashAndRedirect(c, h.sess, "danger", "/dashboard", "Student not found")
			return
		}
		if formErr := asFormError(err); formErr != nil {
			flashAndRedirect(c, h.sess, "danger", "/dashboard", formErr.Messages...)
			return
		}
		flashAndRedirect(c, h.sess, "danger", "/dashboard",
			"Update student data error. "+err.Error())
		return
	}

	flashAndRedirect(c, h.sess, "success", "/dashboard", "Update student data successfull")
}
