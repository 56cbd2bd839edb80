package events_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/events"
	mockuuid "github.com/KirkDiggler/dnd-bot-mutators/internal/uuid/mock"
)

func recorder(id string, priority int, order *[]string, err error) events.ListenerFunc {
	return events.ListenerFunc{
		Name:  id,
		Order: priority,
		Fn: func(e events.Event) error {
			*order = append(*order, id)
			return err
		},
	}
}

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus()
	var order []string

	bus.Subscribe(recorder("late", events.PriorityPresentation, &order, nil), events.EventTypeMutatorEnabled)
	bus.Subscribe(recorder("early", events.PriorityPersistence, &order, nil), events.EventTypeMutatorEnabled)
	bus.Subscribe(recorder("middle", events.PriorityMetrics, &order, nil), events.EventTypeMutatorEnabled)
	bus.Subscribe(recorder("middle_too", events.PriorityMetrics, &order, nil), events.EventTypeMutatorEnabled)

	require.NoError(t, bus.Emit(&events.MutatorEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeMutatorEnabled, SessionID: "sess-1"},
		Mutator:   "brutal",
	}))

	assert.Equal(t, []string{"early", "middle", "middle_too", "late"}, order)
}

func TestEventBus_FailingListenerDoesNotStopOthers(t *testing.T) {
	bus := events.NewBus()
	var order []string

	bus.Subscribe(recorder("broken", 1, &order, errors.New("boom")), events.EventTypeMutatorDisabled)
	bus.Subscribe(recorder("fine", 2, &order, nil), events.EventTypeMutatorDisabled)

	err := bus.Emit(&events.MutatorEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeMutatorDisabled, SessionID: "sess-1"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listener broken failed")
	assert.Equal(t, []string{"broken", "fine"}, order)
}

func TestEventBus_CancelStopsPropagation(t *testing.T) {
	bus := events.NewBus()
	var order []string

	bus.Subscribe(events.ListenerFunc{Name: "veto", Order: 1, Fn: func(e events.Event) error {
		order = append(order, "veto")
		e.Cancel()
		return nil
	}}, events.EventTypeMutatorForcedDisabled)
	bus.Subscribe(recorder("after", 2, &order, nil), events.EventTypeMutatorForcedDisabled)

	require.NoError(t, bus.Emit(&events.MutatorEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeMutatorForcedDisabled},
	}))
	assert.Equal(t, []string{"veto"}, order)
}

func TestEventBus_UnsubscribeAndClear(t *testing.T) {
	bus := events.NewBus()
	var order []string

	l := recorder("both", 1, &order, nil)
	bus.Subscribe(l, events.EventTypeMutatorEnabled, events.EventTypeMutatorDisabled)
	assert.Equal(t, 1, bus.ListenerCount(events.EventTypeMutatorEnabled))

	bus.Unsubscribe("both")
	assert.Zero(t, bus.ListenerCount(events.EventTypeMutatorEnabled))
	assert.Zero(t, bus.ListenerCount(events.EventTypeMutatorDisabled))

	bus.Subscribe(l, events.EventTypeMutatorEnabled)
	bus.Clear()
	assert.Zero(t, bus.ListenerCount(events.EventTypeMutatorEnabled))
}

func TestFactory(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := mockuuid.NewMockGenerator(ctrl)
	ids.EXPECT().New().Return("evt-1")
	ids.EXPECT().New().Return("evt-2")

	f := events.NewFactory(ids)

	enabled := f.Transition("sess-1", "brutal", true, 2)
	assert.Equal(t, "evt-1", enabled.ID)
	assert.Equal(t, events.EventTypeMutatorEnabled, enabled.GetType())
	assert.Equal(t, "sess-1", enabled.GetSessionID())
	assert.Equal(t, 2, enabled.Index)
	assert.WithinDuration(t, time.Now(), enabled.OccurredAt, time.Minute)

	forced := f.ForcedDisable("sess-1", "brutal", "mutators.reason.difficulty")
	assert.Equal(t, "evt-2", forced.ID)
	assert.Equal(t, events.EventTypeMutatorForcedDisabled, forced.GetType())
	assert.False(t, forced.Enabled)
	assert.Equal(t, "mutators.reason.difficulty", forced.Reason)
}
