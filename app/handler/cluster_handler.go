package handler

import (
	"bitinglip/internal/model"
	"bitinglip/internal/service"

	"github.com/gin-gonic/gin"
)

// ClusterHandler handles cluster operations
type ClusterHandler struct {
	clusterService *service.ClusterService
}

// NewClusterHandler creates cluster handler
func NewClusterHandler(clusterService *service.ClusterService) *ClusterHandler {
	return &ClusterHandler{clusterService: clusterService}
}

// ListClusters lists clusters
// @Router /api/v1/clusters [get]
func (h *ClusterHandler) ListClusters(c *gin.Context) {
	respondOK(c, h.clusterService.ListClusters(c.Request.Context()))
}

// GetCluster gets a cluster
// @Router /api/v1/clusters/{id} [get]
func (h *ClusterHandler) GetCluster(c *gin.Context) {
	cluster, err := h.clusterService.GetCluster(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, cluster)
}

// ListClusterWorkers lists the workers of a cluster
// @Router /api/v1/clusters/{id}/workers [get]
func (h *ClusterHandler) ListClusterWorkers(c *gin.Context) {
	workers, err := h.clusterService.ListClusterWorkers(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, workers)
}

// CreateCluster creates a cluster
// @Router /api/v1/clusters [post]
func (h *ClusterHandler) CreateCluster(c *gin.Context) {
	payload := bindPayload(c)
	req := &model.CreateClusterRequest{
		Name:        optionalString(payload, "name"),
		Description: optionalString(payload, "description"),
	}

	cluster := h.clusterService.CreateCluster(c.Request.Context(), req)
	respondMessage(c, cluster, "Cluster created successfully")
}
