package events

import (
	"sync"
	"time"
)

// Bus is an in-process publisher. Subscribers are called synchronously in
// subscription order, on the goroutine that sent the event.
type Bus struct {
	mu          sync.Mutex
	nextSubID   int
	subscribers map[int]NotifyFunc
	order       []int
	sequence    int64
	now         func() time.Time
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[int]NotifyFunc),
		now:         time.Now,
	}
}

// Subscribe registers fn and returns a function that removes it again
func (b *Bus) Subscribe(fn NotifyFunc) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextSubID
	b.nextSubID++
	b.subscribers[id] = fn
	b.order = append(b.order, id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subscribers, id)
		for i, subID := range b.order {
			if subID == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// SendEvent stamps the event with a sequence number and timestamp and
// delivers it to all subscribers
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}
	listeners := make([]NotifyFunc, 0, len(b.order))
	for _, id := range b.order {
		listeners = append(listeners, b.subscribers[id])
	}
	b.mu.Unlock()

	// Listeners run outside the lock so they may publish or unsubscribe
	for _, fn := range listeners {
		fn(event)
	}
	return nil
}
