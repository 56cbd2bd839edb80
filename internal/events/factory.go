package events

import (
	"time"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/uuid"
)

// Factory stamps new events with an ID and timestamp
type Factory struct {
	ids uuid.Generator
	now func() time.Time
}

// NewFactory creates a factory drawing IDs from the generator
func NewFactory(ids uuid.Generator) *Factory {
	if ids == nil {
		panic("uuid generator is required")
	}
	return &Factory{ids: ids, now: time.Now}
}

func (f *Factory) base(t EventType, sessionID string) BaseEvent {
	return BaseEvent{
		ID:         f.ids.New(),
		Type:       t,
		SessionID:  sessionID,
		OccurredAt: f.now(),
	}
}

// Transition builds the event for an applied enable or disable
func (f *Factory) Transition(sessionID, mutator string, enabled bool, index int) *MutatorEvent {
	t := EventTypeMutatorDisabled
	if enabled {
		t = EventTypeMutatorEnabled
	}
	return &MutatorEvent{
		BaseEvent: f.base(t, sessionID),
		Mutator:   mutator,
		Enabled:   enabled,
		Index:     index,
	}
}

// ForcedDisable builds the event for a mutator switched off by a sweep
func (f *Factory) ForcedDisable(sessionID, mutator, reason string) *MutatorEvent {
	return &MutatorEvent{
		BaseEvent: f.base(EventTypeMutatorForcedDisabled, sessionID),
		Mutator:   mutator,
		Index:     -1,
		Reason:    reason,
	}
}

// ListChanged builds the event for new registrations
func (f *Factory) ListChanged(sessionID string, count int) *ListChangedEvent {
	return &ListChangedEvent{
		BaseEvent: f.base(EventTypeMutatorListChanged, sessionID),
		Count:     count,
	}
}
