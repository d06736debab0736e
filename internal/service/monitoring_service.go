package service

import (
	"context"
	"time"

	"bitinglip/internal/model"
	"bitinglip/pkg/events"
	"bitinglip/pkg/monitoring"
	"bitinglip/pkg/store/memory"
)

const alertBackdate = 5 * time.Minute

// MonitoringService synthesizes system metrics and alerts
type MonitoringService struct {
	store   *memory.Store
	sampler monitoring.Sampler
	bus     events.Bus
	now     func() time.Time
}

// NewMonitoringService creates monitoring service; bus may be nil
func NewMonitoringService(store *memory.Store, sampler monitoring.Sampler, bus events.Bus) *MonitoringService {
	if sampler == nil {
		sampler = monitoring.NewUniformSampler(0)
	}
	return &MonitoringService{store: store, sampler: sampler, bus: bus, now: utcNow}
}

// SystemMetrics returns a freshly sampled snapshot. Counts come from the store.
func (s *MonitoringService) SystemMetrics(ctx context.Context) *model.SystemMetrics {
	return &model.SystemMetrics{
		Timestamp:     s.now(),
		CPUUsage:      s.sampler.Sample(monitoring.CPUUsageRange),
		MemoryUsage:   s.sampler.Sample(monitoring.MemoryUsageRange),
		GPUUsage:      s.sampler.Sample(monitoring.GPUUsageRange),
		NetworkIO:     s.sampler.Sample(monitoring.NetworkIORange),
		DiskIO:        s.sampler.Sample(monitoring.DiskIORange),
		ActiveTasks:   s.store.CountTasks(model.TaskStatusRunning),
		TotalWorkers:  s.store.CountWorkers(""),
		ActiveWorkers: s.store.CountWorkers(model.WorkerStatusActive),
	}
}

// Alerts returns the fixed alert list
func (s *MonitoringService) Alerts(ctx context.Context) []model.Alert {
	now := s.now()
	return []model.Alert{
		{
			ID:        "alert-001",
			Type:      "warning",
			Message:   "High GPU utilization on cluster-002",
			Timestamp: now,
			Severity:  "medium",
		},
		{
			ID:        "alert-002",
			Type:      "info",
			Message:   "Model deployment completed successfully",
			Timestamp: now.Add(-alertBackdate),
			Severity:  "low",
		},
	}
}

// PublishMetrics samples a snapshot and publishes it as metrics_updated
func (s *MonitoringService) PublishMetrics(ctx context.Context) error {
	if s.bus == nil {
		return nil
	}
	return s.bus.Publish(ctx, events.New(events.MetricsUpdated, s.SystemMetrics(ctx)))
}
