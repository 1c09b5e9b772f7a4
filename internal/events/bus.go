// Package events provides the in-process domain event bus that decouples
// entity deletion from the cleanup of the collections it owns: area
// deletion purges area-owned collections, player deletion purges the
// account's characters.
//
// Delivery is synchronous and fire-and-continue: Publish invokes every
// subscribed handler in registration order, logs any handler failure, and
// never re-raises it to the publisher. Events are not persisted or replayed;
// a crash between a store delete and dispatch loses the cleanup, which is an
// accepted trade-off of the protocol.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Event is a domain event routed by type name.
type Event interface {
	EventType() string
}

// Handler processes one event. A returned error is logged and contained; it
// never stops later handlers.
type Handler func(ctx context.Context, evt Event) error

// Bus is an in-process publish/subscribe dispatcher. Subscriptions are
// registered explicitly at startup; there is no reflective wiring.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]subscription
	logger   *slog.Logger
}

type subscription struct {
	name    string
	handler Handler
}

// NewBus creates an empty bus.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		handlers: make(map[string][]subscription),
		logger:   logger,
	}
}

// Subscribe registers a named handler for an event type. The name only
// identifies the handler in logs.
func (b *Bus) Subscribe(eventType, name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], subscription{name: name, handler: handler})
}

// Publish dispatches evt to every handler subscribed to its type. Each
// handler runs exactly once per publish; failures and panics are logged per
// handler and the remaining handlers still run.
func (b *Bus) Publish(ctx context.Context, evt Event) {
	b.mu.RLock()
	subs := b.handlers[evt.EventType()]
	b.mu.RUnlock()

	for _, sub := range subs {
		if err := b.invoke(ctx, sub, evt); err != nil {
			b.logger.Error("event handler failed",
				slog.String("event", evt.EventType()),
				slog.String("handler", sub.name),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (b *Bus) invoke(ctx context.Context, sub subscription, evt Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return sub.handler(ctx, evt)
}
