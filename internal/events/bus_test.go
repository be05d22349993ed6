package events

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var got []string

	bus.Subscribe(func(e Event) { got = append(got, "first:"+string(e.Action)) })
	bus.Subscribe(func(e Event) { got = append(got, "second:"+string(e.Action)) })

	require.NoError(t, bus.SendEvent(Event{Type: EventBoardChanged, Action: ActionCardMoved}))

	assert.Equal(t, []string{"first:card_moved", "second:card_moved"}, got)
}

func TestBus_SequenceAndTimestamp(t *testing.T) {
	bus := NewBus()
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	bus.now = func() time.Time { return fixed }

	var received []Event
	bus.Subscribe(func(e Event) { received = append(received, e) })

	_ = bus.SendEvent(Event{Type: EventScheduleChanged})
	_ = bus.SendEvent(Event{Type: EventScheduleChanged})

	require.Len(t, received, 2)
	assert.Equal(t, int64(1), received[0].SequenceID)
	assert.Equal(t, int64(2), received[1].SequenceID)
	assert.Equal(t, fixed, received[0].Timestamp)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	unsubscribe := bus.Subscribe(func(Event) { calls++ })

	_ = bus.SendEvent(Event{})
	unsubscribe()
	_ = bus.SendEvent(Event{})

	assert.Equal(t, 1, calls)
}

func TestBus_ListenerMayUnsubscribeItself(t *testing.T) {
	bus := NewBus()
	calls := 0
	var unsubscribe func()
	unsubscribe = bus.Subscribe(func(Event) {
		calls++
		unsubscribe()
	})

	_ = bus.SendEvent(Event{})
	_ = bus.SendEvent(Event{})

	assert.Equal(t, 1, calls)
}

type failingPublisher struct {
	attempts int
}

func (f *failingPublisher) SendEvent(Event) error {
	f.attempts++
	return errors.New("simulated send failure")
}

func TestPublish_NilClient(t *testing.T) {
	assert.NotPanics(t, func() {
		Publish(nil, Event{Type: EventBoardChanged})
	})
}

func TestPublish_SwallowsErrors(t *testing.T) {
	pub := &failingPublisher{}
	Publish(pub, Event{Type: EventBoardChanged})
	assert.Equal(t, 1, pub.attempts)
}
