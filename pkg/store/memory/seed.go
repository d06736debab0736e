package memory

import (
	"time"

	"bitinglip/internal/model"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// Seed loads the fixture records into s
func Seed(s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range seedModels() {
		s.models.add(m)
	}
	for _, c := range seedClusters() {
		s.clusters.add(c)
	}
	for _, t := range seedTasks() {
		s.tasks.add(t)
	}
	for _, w := range seedWorkers() {
		s.workers.add(w)
	}
}

func seedModels() []model.Model {
	return []model.Model{
		{
			ID:          "model-001",
			Name:        "GPT-2 Base",
			Description: "OpenAI GPT-2 language model for text generation",
			ModelType:   "text-generation",
			Version:     "1.0.0",
			SizeGB:      2.4,
			Status:      model.ModelStatusReady,
			CreatedAt:   ts("2024-01-15T10:00:00Z"),
			UpdatedAt:   ts("2024-01-15T10:00:00Z"),
			Metrics: model.ModelMetrics{
				Accuracy:        0.87,
				TotalRuns:       1524,
				AvgResponseTime: 0.45,
				ErrorRate:       0.02,
			},
		},
		{
			ID:          "model-002",
			Name:        "Stable Diffusion XL",
			Description: "High-resolution image generation model",
			ModelType:   "image-generation",
			Version:     "1.2.0",
			SizeGB:      6.8,
			Status:      model.ModelStatusDeployed,
			CreatedAt:   ts("2024-01-20T14:30:00Z"),
			UpdatedAt:   ts("2024-01-20T14:30:00Z"),
			Metrics: model.ModelMetrics{
				Accuracy:        0.92,
				TotalRuns:       856,
				AvgResponseTime: 2.1,
				ErrorRate:       0.01,
			},
		},
		{
			ID:          "model-003",
			Name:        "LLaMA 2 7B",
			Description: "Meta's LLaMA 2 model for conversational AI",
			ModelType:   "text-generation",
			Version:     "2.0.0",
			SizeGB:      13.2,
			Status:      model.ModelStatusLoading,
			CreatedAt:   ts("2024-01-25T09:15:00Z"),
			UpdatedAt:   ts("2024-01-25T09:15:00Z"),
			Metrics: model.ModelMetrics{
				Accuracy:        0.89,
				TotalRuns:       423,
				AvgResponseTime: 0.78,
				ErrorRate:       0.03,
			},
		},
	}
}

func seedClusters() []model.Cluster {
	return []model.Cluster{
		{
			ID:            "cluster-001",
			Name:          "GPU Cluster Alpha",
			Description:   "Primary cluster for text generation workloads",
			Status:        model.ClusterStatusActive,
			WorkerCount:   4,
			TotalGPUs:     8,
			AvailableGPUs: 3,
			CPUUsage:      0.65,
			MemoryUsage:   0.72,
			GPUUsage:      0.58,
			CreatedAt:     ts("2024-01-10T08:00:00Z"),
			UpdatedAt:     ts("2024-01-31T15:45:00Z"),
		},
		{
			ID:            "cluster-002",
			Name:          "GPU Cluster Beta",
			Description:   "Secondary cluster for image generation",
			Status:        model.ClusterStatusActive,
			WorkerCount:   2,
			TotalGPUs:     4,
			AvailableGPUs: 1,
			CPUUsage:      0.82,
			MemoryUsage:   0.91,
			GPUUsage:      0.78,
			CreatedAt:     ts("2024-01-12T10:30:00Z"),
			UpdatedAt:     ts("2024-01-31T15:45:00Z"),
		},
	}
}

func seedTasks() []model.Task {
	return []model.Task{
		{
			ID:            "task-001",
			Name:          "Text Generation Job",
			ModelID:       strPtr("model-001"),
			ClusterID:     strPtr("cluster-001"),
			Status:        model.TaskStatusCompleted,
			TaskType:      "text-generation",
			Priority:      model.TaskPriorityMedium,
			CreatedAt:     ts("2024-01-31T14:30:00Z"),
			UpdatedAt:     ts("2024-01-31T14:32:15Z"),
			ExecutionTime: floatPtr(2.15),
			InputData:     map[string]interface{}{"prompt": "Write a story about AI"},
			OutputData: map[string]interface{}{
				"generated_text": "Once upon a time, in a world where artificial intelligence...",
			},
		},
		{
			ID:         "task-002",
			Name:       "Image Generation Task",
			ModelID:    strPtr("model-002"),
			ClusterID:  strPtr("cluster-002"),
			Status:     model.TaskStatusRunning,
			TaskType:   "image-generation",
			Priority:   model.TaskPriorityHigh,
			CreatedAt:  ts("2024-01-31T15:00:00Z"),
			UpdatedAt:  ts("2024-01-31T15:02:30Z"),
			InputData:  map[string]interface{}{"prompt": "A beautiful sunset over mountains"},
			OutputData: nil,
		},
	}
}

func seedWorkers() []model.Worker {
	return []model.Worker{
		{
			ID:            "worker-001",
			Name:          "GPU-Worker-01",
			ClusterID:     "cluster-001",
			Status:        model.WorkerStatusActive,
			Host:          "192.168.1.100",
			Port:          8080,
			GPUCount:      2,
			GPUMemory:     24000,
			CPUUsage:      0.45,
			MemoryUsage:   0.68,
			GPUUsage:      0.32,
			MaxTasks:      4,
			ActiveTasks:   1,
			LastHeartbeat: ts("2024-01-31T15:45:00Z"),
		},
		{
			ID:            "worker-002",
			Name:          "GPU-Worker-02",
			ClusterID:     "cluster-001",
			Status:        model.WorkerStatusActive,
			Host:          "192.168.1.101",
			Port:          8080,
			GPUCount:      2,
			GPUMemory:     24000,
			CPUUsage:      0.72,
			MemoryUsage:   0.81,
			GPUUsage:      0.65,
			MaxTasks:      4,
			ActiveTasks:   3,
			LastHeartbeat: ts("2024-01-31T15:45:00Z"),
		},
	}
}
