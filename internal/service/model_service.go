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

// ModelService model business logic
type ModelService struct {
	store *memory.Store
	bus   events.Bus
	now   func() time.Time
}

// NewModelService creates model service; bus may be nil
func NewModelService(store *memory.Store, bus events.Bus) *ModelService {
	return &ModelService{store: store, bus: bus, now: utcNow}
}

// ListModels lists all models
func (s *ModelService) ListModels(ctx context.Context) []model.Model {
	return s.store.ListModels()
}

// GetModel gets a model by id
func (s *ModelService) GetModel(ctx context.Context, id string) (*model.Model, error) {
	m, ok := s.store.GetModel(id)
	if !ok {
		return nil, &NotFoundError{Kind: constants.KindModel, ID: id}
	}
	return &m, nil
}

// ListModelTasks lists tasks referencing the model
func (s *ModelService) ListModelTasks(ctx context.Context, id string) ([]model.Task, error) {
	if _, ok := s.store.GetModel(id); !ok {
		return nil, &NotFoundError{Kind: constants.KindModel, ID: id}
	}
	return s.store.TasksByModel(id), nil
}

// DeployModel marks the model deployed. Deploying twice is a no-op on status.
func (s *ModelService) DeployModel(ctx context.Context, id string) (*model.Model, error) {
	now := s.now()
	m, ok := s.store.UpdateModel(id, func(m *model.Model) {
		m.Status = model.ModelStatusDeployed
		m.UpdatedAt = now
	})
	if !ok {
		return nil, &NotFoundError{Kind: constants.KindModel, ID: id}
	}

	logger.InfoCtx(ctx, "model deployed, model_id: %s", id)
	publish(ctx, s.bus, events.New(events.ModelStatusChanged, m))
	return &m, nil
}
