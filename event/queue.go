package event

import (
	"github.com/lixenwraith/tidewake/parameter"
)

// EventQueue is a fixed ring of notifications emitted during one tick
// Push and Consume both run on the simulation goroutine, so the ring holds no locks
//
// Overflow: the oldest unread event is overwritten and counted
type EventQueue struct {
	events      [parameter.EventQueueSize]GameEvent
	head        uint64 // next read
	tail        uint64 // next write
	overwritten uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest when the ring is full
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = event
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
		eq.overwritten++
	}
}

// Consume returns pending events in FIFO order and empties the ring
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & parameter.EventBufferMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Overwritten counts events lost to overflow since creation
func (eq *EventQueue) Overwritten() uint64 {
	return eq.overwritten
}
