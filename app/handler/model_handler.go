package handler

import (
	"bitinglip/internal/service"

	"github.com/gin-gonic/gin"
)

// ModelHandler handles model operations
type ModelHandler struct {
	modelService *service.ModelService
}

// NewModelHandler creates model handler
func NewModelHandler(modelService *service.ModelService) *ModelHandler {
	return &ModelHandler{modelService: modelService}
}

// ListModels lists models
// @Router /api/v1/models [get]
func (h *ModelHandler) ListModels(c *gin.Context) {
	respondOK(c, h.modelService.ListModels(c.Request.Context()))
}

// GetModel gets a model
// @Router /api/v1/models/{id} [get]
func (h *ModelHandler) GetModel(c *gin.Context) {
	m, err := h.modelService.GetModel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, m)
}

// ListModelTasks lists tasks that reference the model
// @Router /api/v1/models/{id}/tasks [get]
func (h *ModelHandler) ListModelTasks(c *gin.Context) {
	tasks, err := h.modelService.ListModelTasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, tasks)
}

// DeployModel deploys a model. The request body is accepted and ignored.
// @Router /api/v1/models/{id}/deploy [post]
func (h *ModelHandler) DeployModel(c *gin.Context) {
	_ = bindPayload(c)

	m, err := h.modelService.DeployModel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, m, "Model deployed successfully")
}
