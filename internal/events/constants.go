package events

// Event type constants
const (
	EventTypeMutatorEnabled        EventType = "mutator.enabled"
	EventTypeMutatorDisabled       EventType = "mutator.disabled"
	EventTypeMutatorForcedDisabled EventType = "mutator.forced_disabled"
	EventTypeMutatorListChanged    EventType = "mutator.list_changed"
)

// Listener priorities, lowest runs first
const (
	PriorityPersistence  = 100
	PriorityMetrics      = 200
	PriorityPresentation = 300
)
