package events

import (
	"time"
)

// EventType represents the type of mutator event
type EventType string

// Event is the base interface for all events carried by the bus
type Event interface {
	GetType() EventType
	GetSessionID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	ID         string
	Type       EventType
	SessionID  string
	OccurredAt time.Time
	Cancelled  bool
}

func (e *BaseEvent) GetType() EventType   { return e.Type }
func (e *BaseEvent) GetSessionID() string { return e.SessionID }
func (e *BaseEvent) IsCancelled() bool    { return e.Cancelled }
func (e *BaseEvent) Cancel()              { e.Cancelled = true }

// MutatorEvent reports an applied state change of one mutator
type MutatorEvent struct {
	BaseEvent

	Mutator string
	Enabled bool

	// Index is the mutator's position in the resolved order
	Index int

	// Reason is the message key explaining a forced disable
	Reason string
}

// ListChangedEvent reports that mutators were registered with a session
type ListChangedEvent struct {
	BaseEvent
	Count int
}
