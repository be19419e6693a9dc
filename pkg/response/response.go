package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The admin UI's fetch calls expect flat JSON bodies: the payload keyed
// by its own name on success, {"message": ...} on failure.

// OK writes a 200 with the given body.
func OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// Message writes {"message": ...} with the given status.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// BadRequest writes a 400 message body.
func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

// Forbidden writes a 403 message body.
func Forbidden(c *gin.Context, message string) {
	Message(c, http.StatusForbidden, message)
}

// InternalError writes the generic 500 body.
func InternalError(c *gin.Context) {
	Message(c, http.StatusInternalServerError, "Internal server error")
}
