package model

import "time"

// WorkerStatus worker node status
type WorkerStatus string

const (
	WorkerStatusActive WorkerStatus = "active"
)

// Worker GPU worker node information
type Worker struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	ClusterID     string       `json:"cluster_id"`
	Status        WorkerStatus `json:"status"`
	Host          string       `json:"host"`
	Port          int          `json:"port"`
	GPUCount      int          `json:"gpu_count"`
	GPUMemory     int          `json:"gpu_memory"` // MB
	CPUUsage      float64      `json:"cpu_usage"`
	MemoryUsage   float64      `json:"memory_usage"`
	GPUUsage      float64      `json:"gpu_usage"`
	MaxTasks      int          `json:"max_tasks"`
	ActiveTasks   int          `json:"active_tasks"`
	LastHeartbeat time.Time    `json:"last_heartbeat"`
}

// GetID returns the record id
func (w Worker) GetID() string { return w.ID }
