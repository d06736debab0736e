package handler

import (
	"bitinglip/internal/model"
	"bitinglip/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task operations
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates task handler
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks lists tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	respondOK(c, h.taskService.ListTasks(c.Request.Context()))
}

// GetTask gets a task
// @Router /api/v1/tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, task)
}

// CreateTask creates a pending task
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	payload := bindPayload(c)
	req := &model.CreateTaskRequest{
		Name:      optionalString(payload, "name"),
		ModelID:   optionalString(payload, "model_id"),
		ClusterID: optionalString(payload, "cluster_id"),
		TaskType:  optionalString(payload, "task_type"),
		Priority:  optionalString(payload, "priority"),
		InputData: optionalObject(payload, "input_data"),
	}

	task := h.taskService.CreateTask(c.Request.Context(), req)
	respondMessage(c, task, "Task created successfully")
}

// QueueStats returns task counts per status
// @Router /api/v1/tasks/queue/stats [get]
func (h *TaskHandler) QueueStats(c *gin.Context) {
	respondOK(c, h.taskService.QueueStats(c.Request.Context()))
}
