// Package event carries simulation notifications from the tick to observers.
// Events are queued during a tick and dispatched synchronously after it.
package event

import (
	"sync"
)

// Handler processes a dispatched event
type Handler func(ev GameEvent)

type subscription struct {
	id    uint64
	types map[EventType]struct{}
	fn    Handler
}

// Bus queues events and routes them to subscribers in registration order
//
// Architecture:
//   - Emit and Dispatch run on the simulation goroutine; Dispatch once per tick
//   - Subscribe and unsubscribe are safe from any goroutine, including handlers;
//     changes apply next dispatch
type Bus struct {
	queue *EventQueue

	mu     sync.Mutex
	subs   []subscription
	nextID uint64
}

func NewBus() *Bus {
	return &Bus{queue: NewEventQueue()}
}

// Emit enqueues an event for the next Dispatch
func (b *Bus) Emit(t EventType, payload any, frame int64) {
	b.queue.Push(GameEvent{Type: t, Payload: payload, Frame: frame})
}

// Subscribe registers fn for the listed types, all types when none are given
// Returns the unsubscribe function, safe to call more than once
func (b *Bus) Subscribe(fn Handler, types ...EventType) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	set := make(map[EventType]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	b.subs = append(b.subs, subscription{id: id, types: set, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Dispatch drains the queue in FIFO order
// All handlers for an event run before the next event
// Returns the number of events drained
func (b *Bus) Dispatch() int {
	events := b.queue.Consume()
	if len(events) == 0 {
		return 0
	}

	b.mu.Lock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, ev := range events {
		for _, s := range subs {
			if len(s.types) > 0 {
				if _, ok := s.types[ev.Type]; !ok {
					continue
				}
			}
			s.fn(ev)
		}
	}
	return len(events)
}

// Pending returns the number of events waiting for Dispatch
func (b *Bus) Pending() int {
	return b.queue.Len()
}

// Overwritten counts events lost because a tick emitted more than the ring holds
func (b *Bus) Overwritten() uint64 {
	return b.queue.Overwritten()
}

// SubscriberCount returns the number of live subscriptions
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
