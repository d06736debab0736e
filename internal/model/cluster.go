package model

import "time"

// ClusterStatus cluster status
type ClusterStatus string

const (
	ClusterStatusActive ClusterStatus = "active"
)

// Cluster GPU cluster
type Cluster struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Status        ClusterStatus `json:"status"`
	WorkerCount   int           `json:"worker_count"`
	TotalGPUs     int           `json:"total_gpus"`
	AvailableGPUs int           `json:"available_gpus"`
	CPUUsage      float64       `json:"cpu_usage"`    // fraction in [0,1]
	MemoryUsage   float64       `json:"memory_usage"` // fraction in [0,1]
	GPUUsage      float64       `json:"gpu_usage"`    // fraction in [0,1]
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// GetID returns the record id
func (c Cluster) GetID() string { return c.ID }

// CreateClusterRequest create cluster request, every field optional
type CreateClusterRequest struct {
	Name        *string
	Description *string
}
