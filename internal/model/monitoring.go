package model

import "time"

// SystemMetrics point-in-time system snapshot
type SystemMetrics struct {
	Timestamp     time.Time `json:"timestamp"`
	CPUUsage      float64   `json:"cpu_usage"`
	MemoryUsage   float64   `json:"memory_usage"`
	GPUUsage      float64   `json:"gpu_usage"`
	NetworkIO     float64   `json:"network_io"` // MB/s
	DiskIO        float64   `json:"disk_io"`    // MB/s
	ActiveTasks   int       `json:"active_tasks"`
	TotalWorkers  int       `json:"total_workers"`
	ActiveWorkers int       `json:"active_workers"`
}

// Alert system alert
type Alert struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // warning, info
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Severity  string    `json:"severity"`
}
