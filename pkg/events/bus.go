// Package events carries resource change notifications to the websocket feed.
package events

import (
	"context"
	"time"
)

// Type event type understood by the front-end
type Type string

const (
	ClusterStatusChanged Type = "cluster_status_changed"
	WorkerStatusChanged  Type = "worker_status_changed"
	TaskStatusChanged    Type = "task_status_changed"
	ModelStatusChanged   Type = "model_status_changed"
	MetricsUpdated       Type = "metrics_updated"
	SystemAlert          Type = "system_alert"
)

// Event a single notification
type Event struct {
	Type      Type        `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// New builds an event stamped with the current UTC time
func New(t Type, data interface{}) Event {
	return Event{Type: t, Data: data, Timestamp: time.Now().UTC()}
}

// Bus publish/subscribe transport for events
type Bus interface {
	// Publish delivers e to current subscribers; it never blocks on slow ones.
	Publish(ctx context.Context, e Event) error

	// Subscribe returns a channel of events and a cancel func that closes it.
	Subscribe(ctx context.Context) (<-chan Event, func(), error)

	Close() error
}
