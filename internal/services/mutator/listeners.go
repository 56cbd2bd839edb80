package mutator

import (
	"log"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/events"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/metrics"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/mutators"
)

// eventNotifier publishes engine transitions for one session on the bus
type eventNotifier struct {
	view    *sessionView
	factory *events.Factory
	bus     events.Publisher
	ready   bool
}

var (
	_ mutators.StateNotifier = (*eventNotifier)(nil)
	_ mutators.ListObserver  = (*eventNotifier)(nil)
)

func (n *eventNotifier) MutatorsChanged(m *mutators.Mutator, enabled bool, index int) {
	n.emit(n.factory.Transition(n.view.sessionID(), m.Name(), enabled, index))
}

// ListChanged is muted while the engine is first populated
func (n *eventNotifier) ListChanged() {
	if !n.ready {
		return
	}
	n.emit(n.factory.ListChanged(n.view.sessionID(), 1))
}

func (n *eventNotifier) forcedDisable(m *mutators.Mutator, reasonKey string) {
	n.emit(n.factory.ForcedDisable(n.view.sessionID(), m.Name(), reasonKey))
}

func (n *eventNotifier) emit(event events.Event) {
	if err := n.bus.Emit(event); err != nil {
		log.Printf("MutatorService: Listener failed for %s in session %s: %v", event.GetType(), event.GetSessionID(), err)
	}
}

// metricsListener counts transitions and forced disables
func metricsListener(m *metrics.Metrics) events.EventListener {
	return events.ListenerFunc{
		Name:  "mutator-metrics",
		Order: events.PriorityMetrics,
		Fn: func(event events.Event) error {
			e, ok := event.(*events.MutatorEvent)
			if !ok {
				return nil
			}
			if e.GetType() == events.EventTypeMutatorForcedDisabled {
				m.ForcedDisable(e.Mutator)
				return nil
			}
			m.Transition(e.Mutator, e.Enabled)
			return nil
		},
	}
}
