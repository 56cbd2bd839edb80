package events

import (
	"errors"
	"log"
	"sort"
	"sync"

	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// ListenerFunc adapts a function to EventListener
type ListenerFunc struct {
	Name  string
	Order int
	Fn    func(event Event) error
}

func (l ListenerFunc) HandleEvent(event Event) error { return l.Fn(event) }
func (l ListenerFunc) Priority() int                 { return l.Order }
func (l ListenerFunc) ID() string                    { return l.Name }

// Publisher is the emitting side of the bus
type Publisher interface {
	Emit(event Event) error
}

// Bus manages event distribution. Listeners run synchronously on the
// emitting goroutine in priority order.
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(listener EventListener, eventTypes ...EventType) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, eventType := range eventTypes {
		b.listeners[eventType] = append(b.listeners[eventType], listener)

		// Stable so equal priorities keep subscription order
		sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
			return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
		})

		log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
			listener.ID(), eventType, listener.Priority())
	}
}

// Unsubscribe removes a listener from every event type
func (b *Bus) Unsubscribe(listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for eventType, listeners := range b.listeners {
		kept := listeners[:0]
		for _, l := range listeners {
			if l.ID() != listenerID {
				kept = append(kept, l)
			}
		}
		if len(kept) != len(listeners) {
			log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
		}
		b.listeners[eventType] = kept
	}
}

// Emit sends an event to all registered listeners. A failing listener does
// not stop the others; every failure is returned joined.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	var errs []error
	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("EventBus: Event %s cancelled, stopping propagation", event.GetType())
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			errs = append(errs, dnderr.Wrapf(err, "listener %s failed", listener.ID()).
				WithMeta("event", string(event.GetType())).
				WithMeta("session_id", event.GetSessionID()))
		}
	}

	return errors.Join(errs...)
}

// ListenerCount returns how many listeners receive the event type
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[eventType])
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	log.Printf("EventBus: Cleared all listeners")
}
