package constants

// Task create defaults
const (
	TaskIDPrefix        = "task"
	DefaultTaskName     = "New Task"
	DefaultTaskType     = "text-generation"
	DefaultTaskPriority = "medium"
)
