package events

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryBus in-process fan-out
type MemoryBus struct {
	buffer int

	mu     sync.RWMutex
	subs   map[string]chan Event
	closed bool
}

// NewMemoryBus creates a bus whose subscribers buffer up to buffer events
func NewMemoryBus(buffer int) *MemoryBus {
	if buffer <= 0 {
		buffer = 1
	}
	return &MemoryBus{
		buffer: buffer,
		subs:   make(map[string]chan Event),
	}
}

// Publish sends e to every subscriber, dropping it for subscribers whose buffer is full
func (b *MemoryBus) Publish(_ context.Context, e Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
	return nil
}

// Subscribe registers a new subscriber
func (b *MemoryBus) Subscribe(_ context.Context) (<-chan Event, func(), error) {
	ch := make(chan Event, b.buffer)
	id := uuid.NewString()

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}, nil
	}
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel, nil
}

// Subscribers returns the number of live subscribers
func (b *MemoryBus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close closes every subscriber channel
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
	return nil
}
