// Package memory holds the in-process resource store backing the mock API.
//
// The store owns four ordered collections (models, clusters, tasks, workers).
// Records are looked up by linear scan and handed out as value copies, so a
// caller can serialise a record while another request mutates the store.
// A single RWMutex guards all collections.
package memory

import (
	"fmt"
	"sync"

	"bitinglip/internal/model"
	"bitinglip/pkg/constants"
)

type record interface {
	GetID() string
}

// collection is an ordered record sequence with a monotonic id counter.
// The counter starts at the seed length, so ids match len+1 while no
// record is ever removed and stay unique if one is.
type collection[T record] struct {
	prefix string
	items  []T
	seq    int
}

func newCollection[T record](prefix string) *collection[T] {
	return &collection[T]{prefix: prefix}
}

func (c *collection[T]) index(id string) int {
	for i := range c.items {
		if c.items[i].GetID() == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) find(id string) (T, bool) {
	var zero T
	i := c.index(id)
	if i < 0 {
		return zero, false
	}
	return c.items[i], true
}

func (c *collection[T]) list() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *collection[T]) count(match func(T) bool) int {
	n := 0
	for _, item := range c.items {
		if match(item) {
			n++
		}
	}
	return n
}

func (c *collection[T]) nextID() string {
	c.seq++
	return fmt.Sprintf("%s-%03d", c.prefix, c.seq)
}

// add appends a record that already carries its id (seed data)
func (c *collection[T]) add(item T) {
	c.items = append(c.items, item)
	c.seq++
}

func (c *collection[T]) appendNew(build func(id string) T) T {
	item := build(c.nextID())
	c.items = append(c.items, item)
	return item
}

func (c *collection[T]) mutate(id string, fn func(*T)) (T, bool) {
	var zero T
	i := c.index(id)
	if i < 0 {
		return zero, false
	}
	fn(&c.items[i])
	return c.items[i], true
}

// Store in-memory resource store
type Store struct {
	mu       sync.RWMutex
	models   *collection[model.Model]
	clusters *collection[model.Cluster]
	tasks    *collection[model.Task]
	workers  *collection[model.Worker]
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		models:   newCollection[model.Model](constants.ModelIDPrefix),
		clusters: newCollection[model.Cluster](constants.ClusterIDPrefix),
		tasks:    newCollection[model.Task](constants.TaskIDPrefix),
		workers:  newCollection[model.Worker](constants.WorkerIDPrefix),
	}
}

// NewSeededStore creates a store loaded with the fixture data
func NewSeededStore() *Store {
	s := NewStore()
	Seed(s)
	return s
}

// ListModels returns all models in insertion order
func (s *Store) ListModels() []model.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.models.list()
}

// GetModel finds a model by id
func (s *Store) GetModel(id string) (model.Model, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.models.find(id)
}

// UpdateModel applies fn to the stored model and returns the updated copy
func (s *Store) UpdateModel(id string, fn func(*model.Model)) (model.Model, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.models.mutate(id, fn)
}

// ListClusters returns all clusters in insertion order
func (s *Store) ListClusters() []model.Cluster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clusters.list()
}

// GetCluster finds a cluster by id
func (s *Store) GetCluster(id string) (model.Cluster, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clusters.find(id)
}

// AppendCluster assigns the next cluster id, builds the record and appends it
func (s *Store) AppendCluster(build func(id string) model.Cluster) model.Cluster {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clusters.appendNew(build)
}

// ListTasks returns all tasks in insertion order
func (s *Store) ListTasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks.list()
}

// GetTask finds a task by id
func (s *Store) GetTask(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks.find(id)
}

// AppendTask assigns the next task id, builds the record and appends it
func (s *Store) AppendTask(build func(id string) model.Task) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.appendNew(build)
}

// TasksByModel returns tasks whose model_id equals modelID
func (s *Store) TasksByModel(modelID string) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks.filter(func(t model.Task) bool {
		return t.ModelID != nil && *t.ModelID == modelID
	})
}

// CountTasks counts tasks with the given status
func (s *Store) CountTasks(status model.TaskStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks.count(func(t model.Task) bool { return t.Status == status })
}

// ListWorkers returns all workers in insertion order
func (s *Store) ListWorkers() []model.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workers.list()
}

// GetWorker finds a worker by id
func (s *Store) GetWorker(id string) (model.Worker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workers.find(id)
}

// WorkersByCluster returns workers whose cluster_id equals clusterID
func (s *Store) WorkersByCluster(clusterID string) []model.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workers.filter(func(w model.Worker) bool { return w.ClusterID == clusterID })
}

// CountWorkers counts workers with the given status; an empty status counts all
func (s *Store) CountWorkers(status model.WorkerStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workers.count(func(w model.Worker) bool { return status == "" || w.Status == status })
}
