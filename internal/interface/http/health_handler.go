package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Version string
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{Version: version}
}

// Health GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "ProCRM API is running",
		"version": h.Version,
	})
}
