package main

import (
	"context"
	"testing"
	"time"

	"bitinglip/internal/jobs"
	"bitinglip/internal/service"
	"bitinglip/pkg/events"
	"bitinglip/pkg/lock"
	"bitinglip/pkg/monitoring"
	"bitinglip/pkg/store/memory"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(ch <-chan events.Event) int {
	n := 0
	for {
		select {
		case <-ch:
			n++
		default:
			return n
		}
	}
}

func TestMetricsBroadcastJob_OneReplicaPerTick(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	interval := 5 * time.Second

	bus := events.NewMemoryBus(16)
	defer bus.Close()
	ch, cancel, err := bus.Subscribe(ctx)
	require.NoError(t, err)
	defer cancel()

	// Two replicas: separate redis connections, separate services, one shared feed
	var replicas []*metricsBroadcastJob
	for i := 0; i < 2; i++ {
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()
		svc := service.NewMonitoringService(memory.NewSeededStore(), monitoring.FixedSampler(0.5), bus)
		lease := lock.NewRedisDistributedLock(client, metricsLeaseKey).WithTTL(leaseTTL(interval))
		replicas = append(replicas, newMetricsBroadcastJob(interval, svc, lease))
	}

	require.NoError(t, replicas[0].Run(ctx))
	require.NoError(t, replicas[1].Run(ctx))
	assert.Equal(t, 1, drain(ch), "one tick, one broadcast")

	// Next tick: the lease taken at the last tick has expired
	mr.FastForward(interval)
	require.NoError(t, replicas[1].Run(ctx))
	require.NoError(t, replicas[0].Run(ctx))
	assert.Equal(t, 1, drain(ch))
}

func TestMetricsBroadcastJob_SingleInstance(t *testing.T) {
	ctx := context.Background()
	bus := events.NewMemoryBus(16)
	defer bus.Close()
	ch, cancel, err := bus.Subscribe(ctx)
	require.NoError(t, err)
	defer cancel()

	svc := service.NewMonitoringService(memory.NewSeededStore(), monitoring.FixedSampler(0.5), bus)
	job := newMetricsBroadcastJob(time.Second, svc, lock.NewRedisDistributedLock(nil, metricsLeaseKey))

	for i := 0; i < 3; i++ {
		require.NoError(t, job.Run(ctx))
	}
	assert.Equal(t, 3, drain(ch))

	var delayed jobs.DelayedJob = job
	assert.True(t, delayed.Delayed())
	assert.Equal(t, "metrics-broadcast", job.Name())
}

func TestLeaseTTL(t *testing.T) {
	assert.Equal(t, 4500*time.Millisecond, leaseTTL(5*time.Second))
	assert.Equal(t, time.Duration(0), leaseTTL(0))
}
