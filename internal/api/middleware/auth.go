package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/response"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/session"
)

// AdminAuth is the session guard shared by every admin operation: no
// identity in the session redirects to the login page, a non-admin
// role gets a 403.
func AdminAuth(sess *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := sess.Identity(c.Request)
		if userID == "" || role == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		if role != string(model.RoleAdmin) {
			response.Forbidden(c, "Forbidden")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("user_role", role)

		c.Next()
	}
}
