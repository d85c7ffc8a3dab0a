package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire format is fixed: success bodies carry "success": true alongside
// endpoint-specific keys; error bodies carry a single "error" message, with
// optional field details for validation failures.

func OK(c *gin.Context, status int, payload gin.H) {
	if status == 0 {
		status = http.StatusOK
	}
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func Err(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": message})
}

func ErrDetails(c *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": message, "details": details})
}

// AbortErr is Err for middleware chains: it also aborts the context.
func AbortErr(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
