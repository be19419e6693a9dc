package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/dto"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/service"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/response"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/session"
)

// AuthHandler serves login/logout and the flash queue the pages render.
type AuthHandler struct {
	auth service.AuthService
	sess *session.Manager
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(auth service.AuthService, sess *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sess: sess}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	_ = c.ShouldBind(&form)

	user, err := h.auth.Login(c.Request.Context(), form.UserID, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			flashAndRedirect(c, h.sess, "danger", "/login", "Invalid user ID or password!")
			return
		}
		response.InternalError(c)
		return
	}

	if err := h.sess.SetIdentity(c.Writer, c.Request, user.UserID, string(user.Role)); err != nil {
		response.InternalError(c)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	_ = h.sess.Clear(c.Writer, c.Request)
	c.Redirect(http.StatusSeeOther, "/login")
}

// Flashes handles GET /admin/register: the registration landing shows
// the queued outcome notices.
func (h *AuthHandler) Flashes(c *gin.Context) {
	flashes := h.sess.Flashes(c.Writer, c.Request)
	if flashes == nil {
		flashes = []session.Flash{}
	}
	response.OK(c, gin.H{"flashes": flashes})
}
