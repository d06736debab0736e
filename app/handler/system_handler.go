package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves the health and index endpoints
type SystemHandler struct {
	service string
	version string
}

// NewSystemHandler creates system handler
func NewSystemHandler(service, version string) *SystemHandler {
	return &SystemHandler{service: service, version: version}
}

// Health reports liveness
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   h.service,
		"version":   h.version,
	})
}

// Root describes the API
// @Router / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":       h.service,
		"documentation": "/docs",
		"health":        "/health",
	})
}
