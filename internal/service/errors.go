package service

import (
	"context"
	"errors"
	"time"

	"bitinglip/pkg/events"
	"bitinglip/pkg/logger"
)

// NotFoundError is returned when a path id matches no record in its collection
type NotFoundError struct {
	Kind string // Model, Cluster, Task, Worker
	ID   string
}

func (e *NotFoundError) Error() string {
	return e.Kind + " not found"
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// publish sends e on bus if one is configured. Failures are logged only.
func publish(ctx context.Context, bus events.Bus, e events.Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, e); err != nil {
		logger.WarnCtx(ctx, "failed to publish %s event: %v", e.Type, err)
	}
}
