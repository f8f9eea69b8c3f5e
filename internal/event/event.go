package event

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

// ErrHandlerPanicked wraps a panic raised inside a subscriber
var ErrHandlerPanicked = errors.New("event handler panicked")

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]any

// Event represents a generic event in the system
type Event struct {
	Version  string   `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type     `json:"type"`
	Payload  any      `json:"payload"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) any {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// PlayerID returns the player the event concerns, if recorded
func (e Event) PlayerID() string {
	id, _ := e.GetMetadataValue(MetaKeyPlayerID).(string)
	return id
}

// NewPlayerEvent creates an event about one player with a typed payload
func NewPlayerEvent(eventType string, playerID string, payload any) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(eventType),
		Payload: payload,
		Metadata: Metadata{
			MetaKeyPlayerID:  playerID,
			MetaKeyTimestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously, in
// subscription order. A handler that fails or panics does not stop the rest;
// all failures come back joined in one error.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := slices.Clone(b.handlers[event.Type])
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := safeHandle(ctx, handler, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlersFailedFmt, len(errs), event.Type, errors.Join(errs...))
	}
	return nil
}

func safeHandle(ctx context.Context, h Handler, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanicked, r)
		}
	}()
	return h(ctx, e)
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
