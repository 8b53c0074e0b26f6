// Package events provides the in-process event bus the sales modules talk
// over. Dial outcomes, bookings and closed deals are announced here so
// downstream concerns like commissions react without the dialer knowing
// they exist. This is part of the platform layer and contains no business
// logic of its own.
package events

import (
	"context"
	"time"
)

// Event is something that happened in the sales pipeline, identified by
// a dotted name such as "dialer.call.logged".
type Event interface {
	// EventName returns a unique identifier for the event type.
	EventName() string
	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time
}

// BaseEvent carries the timestamp shared by every event.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

// OccurredAt returns when the event occurred.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent creates a new base event stamped with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler processes events of a specific type.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc is an adapter to allow ordinary functions to be used as handlers.
type HandlerFunc func(ctx context.Context, event Event) error

// Handle calls the underlying function.
func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus is the interface for publishing and subscribing to pipeline events.
type Bus interface {
	// Publish sends an event to all registered handlers for that event
	// type. Handlers run asynchronously; a publisher never waits on a
	// subscriber.
	Publish(ctx context.Context, event Event)

	// PublishSync sends an event and waits for all handlers to complete.
	PublishSync(ctx context.Context, event Event) error

	// Subscribe registers a handler for a specific event type.
	// The eventName should match the value returned by Event.EventName().
	Subscribe(eventName string, handler Handler)
}
