package service

import (
	"context"

	"bitinglip/internal/model"
	"bitinglip/pkg/constants"
	"bitinglip/pkg/store/memory"
)

// WorkerService worker queries; workers are seeded only
type WorkerService struct {
	store *memory.Store
}

// NewWorkerService creates worker service
func NewWorkerService(store *memory.Store) *WorkerService {
	return &WorkerService{store: store}
}

// ListWorkers lists all workers
func (s *WorkerService) ListWorkers(ctx context.Context) []model.Worker {
	return s.store.ListWorkers()
}

// GetWorker gets a worker by id
func (s *WorkerService) GetWorker(ctx context.Context, id string) (*model.Worker, error) {
	w, ok := s.store.GetWorker(id)
	if !ok {
		return nil, &NotFoundError{Kind: constants.KindWorker, ID: id}
	}
	return &w, nil
}
