package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/dto"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/service"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/response"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/session"
)

// LecturerHandler serves lecturer registration and edits.
type LecturerHandler struct {
	users service.UserService
	sess  *session.Manager
}

// NewLecturerHandler creates the LecturerHandler.
func NewLecturerHandler(users service.UserService, sess *session.Manager) *LecturerHandler {
	return &LecturerHandler{users: users, sess: sess}
}

// RegisterForm handles GET /admin/register/lecturer: the major options.
func (h *LecturerHandler) RegisterForm(c *gin.Context) {
	majors := model.Majors()
	values := make([]string, 0, len(majors))
	for _, m := range majors {
		values = append(values, string(m))
	}
	response.OK(c, gin.H{"majors": values})
}

// Register handles POST /admin/register/lecturer.
func (h *LecturerHandler) Register(c *gin.Context) {
	var form dto.LecturerForm
	_ = c.ShouldBind(&form)

	if err := h.users.RegisterLecturer(c.Request.Context(), &form); err != nil {
		if formErr := asFormError(err); formErr != nil {
			flashAndRedirect(c, h.sess, "danger", "/admin/register/lecturer", formErr.Messages...)
			return
		}
		flashAndRedirect(c, h.sess, "danger", "/admin/register/lecturer",
			"Lecturer registration error. "+err.Error())
		return
	}

	flashAndRedirect(c, h.sess, "success", "/admin/register", "Lecturer successfully registered!")
}

// Edit handles POST /admin/lecturers/:nip.
func (h *LecturerHandler) Edit(c *gin.Context) {
	nip := c.Param("nip")

	var form dto.LecturerForm
	_ = c.ShouldBind(&form)
	if form.NIP == "" {
		form.NIP = nip
	}

	if err := h.users.EditLecturer(c.Request.Context(), nip, &form); err != nil {
		if errors.Is(err, service.ErrLecturerNotFound) {
			flashAndRedirect(c, h.sess, "danger", "/dashboard", "Lecturer not found")
			return
		}
		if formErr := asFormError(err); formErr != nil {
			flashAndRedirect(c, h.sess, "danger", "/dashboard", formErr.Messages...)
			return
		}
		flashAndRedirect(c, h.sess, "danger", "/dashboard",
			"Update lecturer data error. "+err.Error())
		return
	}

	flashAndRedirect(c, h.sess, "success", "/dashboard", "Update lecturer data successfull")
}
