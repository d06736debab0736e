package handler

import (
	"bitinglip/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkerHandler handles worker queries
type WorkerHandler struct {
	workerService *service.WorkerService
}

// NewWorkerHandler creates worker handler
func NewWorkerHandler(workerService *service.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

// ListWorkers lists workers
// @Router /api/v1/workers [get]
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	respondOK(c, h.workerService.ListWorkers(c.Request.Context()))
}

// GetWorker gets a worker
// @Router /api/v1/workers/{id} [get]
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	w, err := h.workerService.GetWorker(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, w)
}
