package handler

import (
	"bitinglip/internal/service"

	"github.com/gin-gonic/gin"
)

// MonitoringHandler handles monitoring API requests
type MonitoringHandler struct {
	monitoringService *service.MonitoringService
}

// NewMonitoringHandler creates a new monitoring handler
func NewMonitoringHandler(monitoringService *service.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{monitoringService: monitoringService}
}

// GetSystemMetrics returns a freshly sampled metrics snapshot
// GET /api/v1/monitoring/system
func (h *MonitoringHandler) GetSystemMetrics(c *gin.Context) {
	respondOK(c, h.monitoringService.SystemMetrics(c.Request.Context()))
}

// GetAlerts returns the current alerts
// GET /api/v1/monitoring/alerts
func (h *MonitoringHandler) GetAlerts(c *gin.Context) {
	respondOK(c, h.monitoringService.Alerts(c.Request.Context()))
}
