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

// TaskService task business logic
type TaskService struct {
	store *memory.Store
	bus   events.Bus
	now   func() time.Time
}

// NewTaskService creates task service; bus may be nil
func NewTaskService(store *memory.Store, bus events.Bus) *TaskService {
	return &TaskService{store: store, bus: bus, now: utcNow}
}

// ListTasks lists all tasks
func (s *TaskService) ListTasks(ctx context.Context) []model.Task {
	return s.store.ListTasks()
}

// GetTask gets a task by id
func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	t, ok := s.store.GetTask(id)
	if !ok {
		return nil, &NotFoundError{Kind: constants.KindTask, ID: id}
	}
	return &t, nil
}

// CreateTask creates a pending task. model_id and cluster_id are stored as given.
func (s *TaskService) CreateTask(ctx context.Context, req *model.CreateTaskRequest) *model.Task {
	if req == nil {
		req = &model.CreateTaskRequest{}
	}

	name := constants.DefaultTaskName
	if req.Name != nil {
		name = *req.Name
	}
	taskType := constants.DefaultTaskType
	if req.TaskType != nil {
		taskType = *req.TaskType
	}
	priority := model.TaskPriority(constants.DefaultTaskPriority)
	if req.Priority != nil {
		priority = model.TaskPriority(*req.Priority)
	}
	input := req.InputData
	if input == nil {
		input = map[string]interface{}{}
	}

	now := s.now()
	t := s.store.AppendTask(func(id string) model.Task {
		return model.Task{
			ID:        id,
			Name:      name,
			ModelID:   req.ModelID,
			ClusterID: req.ClusterID,
			Status:    model.TaskStatusPending,
			TaskType:  taskType,
			Priority:  priority,
			CreatedAt: now,
			UpdatedAt: now,
			InputData: input,
		}
	})

	logger.InfoCtx(ctx, "task created, task_id: %s, type: %s", t.ID, t.TaskType)
	publish(ctx, s.bus, events.New(events.TaskStatusChanged, t))
	return &t
}

// QueueStats counts tasks per status
func (s *TaskService) QueueStats(ctx context.Context) *model.TaskQueueStats {
	stats := &model.TaskQueueStats{
		Pending:   s.store.CountTasks(model.TaskStatusPending),
		Running:   s.store.CountTasks(model.TaskStatusRunning),
		Completed: s.store.CountTasks(model.TaskStatusCompleted),
		Failed:    s.store.CountTasks(model.TaskStatusFailed),
	}
	stats.Total = len(s.store.ListTasks())
	return stats
}
