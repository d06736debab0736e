package model

import "time"

// TaskStatus task status
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
)

// TaskPriority task priority
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task inference task. ModelID and ClusterID are not checked against their collections.
type Task struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	ModelID       *string                `json:"model_id"`
	ClusterID     *string                `json:"cluster_id"`
	Status        TaskStatus             `json:"status"`
	TaskType      string                 `json:"task_type"`
	Priority      TaskPriority           `json:"priority"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	ExecutionTime *float64               `json:"execution_time"` // seconds, null until finished
	InputData     map[string]interface{} `json:"input_data"`
	OutputData    map[string]interface{} `json:"output_data"`
}

// GetID returns the record id
func (t Task) GetID() string { return t.ID }

// CreateTaskRequest create task request, every field optional
type CreateTaskRequest struct {
	Name      *string
	ModelID   *string
	ClusterID *string
	TaskType  *string
	Priority  *string
	InputData map[string]interface{}
}

// TaskQueueStats task counts by status. Queued and Cancelled have no
// matching task status and are always zero.
type TaskQueueStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Queued    int `json:"queued"`
	Running   int `json:"running"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Cancelled int `json:"cancelled"`
}
