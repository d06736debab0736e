package model

import "time"

// ModelStatus model lifecycle status
type ModelStatus string

const (
	ModelStatusReady    ModelStatus = "ready"    // Downloaded, not serving
	ModelStatusDeployed ModelStatus = "deployed" // Serving on a cluster
	ModelStatusLoading  ModelStatus = "loading"  // Being loaded onto workers
)

// Model AI model registered with the platform
type Model struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ModelType   string       `json:"model_type"` // text-generation, image-generation, ...
	Version     string       `json:"version"`
	SizeGB      float64      `json:"size_gb"`
	Status      ModelStatus  `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Metrics     ModelMetrics `json:"metrics"`
}

// ModelMetrics usage metrics of a model
type ModelMetrics struct {
	Accuracy        float64 `json:"accuracy"`
	TotalRuns       int     `json:"total_runs"`
	AvgResponseTime float64 `json:"avg_response_time"` // seconds
	ErrorRate       float64 `json:"error_rate"`
}

// GetID returns the record id
func (m Model) GetID() string { return m.ID }
