package service

import (
	"context"
	"time"

	"bitinglip/internal/model"
	"bitinglip/pkg/constants"
	"bitinglip/pkg/events"
	"bitinglip/pkg/logger"
	"bitinglip/pkg/store/memory"
)

// ClusterService cluster business logic
type ClusterService struct {
	store *memory.Store
	bus   events.Bus
	now   func() time.Time
}

// NewClusterService creates cluster service; bus may be nil
func NewClusterService(store *memory.Store, bus events.Bus) *ClusterService {
	return &ClusterService{store: store, bus: bus, now: utcNow}
}

// ListClusters lists all clusters
func (s *ClusterService) ListClusters(ctx context.Context) []model.Cluster {
	return s.store.ListClusters()
}

// GetCluster gets a cluster by id
func (s *ClusterService) GetCluster(ctx context.Context, id string) (*model.Cluster, error) {
	c, ok := s.store.GetCluster(id)
	if !ok {
		return nil, &NotFoundError{Kind: constants.KindCluster, ID: id}
	}
	return &c, nil
}

// ListClusterWorkers lists workers attached to the cluster
func (s *ClusterService) ListClusterWorkers(ctx context.Context, id string) ([]model.Worker, error) {
	if _, ok := s.store.GetCluster(id); !ok {
		return nil, &NotFoundError{Kind: constants.KindCluster, ID: id}
	}
	return s.store.WorkersByCluster(id), nil
}

// CreateCluster creates an empty active cluster
func (s *ClusterService) CreateCluster(ctx context.Context, req *model.CreateClusterRequest) *model.Cluster {
	name := constants.DefaultClusterName
	description := constants.DefaultClusterDescription
	if req != nil {
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
	}

	now := s.now()
	c := s.store.AppendCluster(func(id string) model.Cluster {
		return model.Cluster{
			ID:          id,
			Name:        name,
			Description: description,
			Status:      model.ClusterStatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})

	logger.InfoCtx(ctx, "cluster created, cluster_id: %s, name: %s", c.ID, c.Name)
	publish(ctx, s.bus, events.New(events.ClusterStatusChanged, c))
	return &c
}
