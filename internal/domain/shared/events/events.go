package events

import (
	"context"
	"sync"
	"time"
)

// DomainEvent is implemented by all domain events.
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// Handler processes a single dispatched event.
type Handler func(ctx context.Context, event DomainEvent) error

// Dispatcher publishes domain events to registered handlers.
type Dispatcher interface {
	Subscribe(eventName string, handler Handler)
	Dispatch(ctx context.Context, event DomainEvent) error
}

// InMemoryDispatcher is a synchronous, in-process dispatcher. Handler errors
// are returned to the caller but do not stop remaining handlers.
type InMemoryDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewInMemoryDispatcher() *InMemoryDispatcher {
	return &InMemoryDispatcher{
		handlers: make(map[string][]Handler),
	}
}

func (d *InMemoryDispatcher) Subscribe(eventName string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

func (d *InMemoryDispatcher) Dispatch(ctx context.Context, event DomainEvent) error {
	d.mu.RLock()
	handlers := d.handlers[event.EventName()]
	d.mu.RUnlock()

	var firstErr error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
