package main

import (
	"context"
	"fmt"
	"time"

	"bitinglip/internal/jobs"
	"bitinglip/internal/service"
	"bitinglip/pkg/lock"
	"bitinglip/pkg/logger"

	"github.com/go-redis/redis/v8"
)

func (app *Application) initJobs() error {
	if app.monitoringService == nil {
		logger.WarnCtx(app.ctx, "Monitoring service not initialized, skipping background task registration")
		return nil
	}

	manager := jobs.NewManager(app.ctx)

	// Replicas sharing a redis channel take one lease per tick, so a single
	// replica publishes each round. Without redis every lease succeeds.
	var redisClient *redis.Client
	if app.redisClient != nil {
		redisClient = app.redisClient.GetClient()
	}

	interval := time.Duration(app.config.Events.MetricsInterval) * time.Second
	metricsLease := lock.NewRedisDistributedLock(redisClient, metricsLeaseKey).WithTTL(leaseTTL(interval))

	manager.Register(newMetricsBroadcastJob(interval, app.monitoringService, metricsLease))

	app.jobsManager = manager
	return nil
}

const metricsLeaseKey = "events:metrics-lock"

// leaseTTL is slightly shorter than the interval so the holder can renew its
// claim on its next tick while later replicas still find the key taken.
func leaseTTL(interval time.Duration) time.Duration {
	if interval <= 0 {
		return 0
	}
	return interval * 9 / 10
}

// metricsBroadcastJob publishes a metrics_updated event each interval.
type metricsBroadcastJob struct {
	interval          time.Duration
	monitoringService *service.MonitoringService
	lease             lock.Leaser
}

func newMetricsBroadcastJob(interval time.Duration, svc *service.MonitoringService, lease lock.Leaser) *metricsBroadcastJob {
	return &metricsBroadcastJob{
		interval:          interval,
		monitoringService: svc,
		lease:             lease,
	}
}

func (j *metricsBroadcastJob) Name() string {
	return "metrics-broadcast"
}

func (j *metricsBroadcastJob) Interval() time.Duration {
	return j.interval
}

// Delayed holds the first broadcast for one interval; no client is connected at startup.
func (j *metricsBroadcastJob) Delayed() bool {
	return true
}

func (j *metricsBroadcastJob) Run(ctx context.Context) error {
	if j.monitoringService == nil {
		return fmt.Errorf("monitoring service not configured")
	}

	if j.lease != nil {
		acquired, err := j.lease.TryLease(ctx)
		if err != nil {
			return err
		}
		if !acquired {
			logger.DebugCtx(ctx, "another instance is broadcasting metrics, skipping this cycle")
			return nil
		}
	}

	logger.DebugCtx(ctx, "broadcasting system metrics")
	return j.monitoringService.PublishMetrics(ctx)
}
