package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	name     string
	interval time.Duration
	delayed  bool
	err      error
	runs     atomic.Int32
}

func (j *countingJob) Name() string            { return j.name }
func (j *countingJob) Interval() time.Duration { return j.interval }
func (j *countingJob) Delayed() bool           { return j.delayed }

func (j *countingJob) Run(ctx context.Context) error {
	j.runs.Add(1)
	return j.err
}

func TestManager_RunsImmediatelyAndOnTick(t *testing.T) {
	m := NewManager(context.Background())
	job := &countingJob{name: "tick", interval: 10 * time.Millisecond}
	m.Register(job)
	m.Start()

	require.Eventually(t, func() bool { return job.runs.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	m.Stop()
	m.Wait()
	stopped := job.runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, job.runs.Load())
}

func TestManager_DelayedJobWaitsForFirstTick(t *testing.T) {
	m := NewManager(context.Background())
	job := &countingJob{name: "delayed", interval: time.Hour, delayed: true}
	m.Register(job)
	m.Start()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), job.runs.Load())

	m.Stop()
	m.Wait()
}

func TestManager_FailingJobKeepsRunning(t *testing.T) {
	m := NewManager(context.Background())
	job := &countingJob{name: "failing", interval: 10 * time.Millisecond, err: errors.New("boom")}
	m.Register(job)
	m.Start()
	defer func() {
		m.Stop()
		m.Wait()
	}()

	require.Eventually(t, func() bool { return job.runs.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestManager_RegisterAfterStartIgnored(t *testing.T) {
	m := NewManager(context.Background())
	m.Register(nil)
	m.Register(&countingJob{name: "first", interval: time.Hour, delayed: true})
	m.Start()
	m.Start()
	m.Register(&countingJob{name: "late", interval: time.Hour})

	assert.Equal(t, []string{"first"}, m.Jobs())

	m.Stop()
	m.Wait()
}

func TestManager_ParentCancelStopsJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager(ctx)
	m.Register(&countingJob{name: "tick", interval: 5 * time.Millisecond})
	m.Start()

	cancel()

	done := make(chan struct{})
	go func() {
		m.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("jobs did not stop after parent cancel")
	}
}
