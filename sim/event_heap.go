package sim

import "container/heap"

// EventQueue is a priority queue of pending events with deterministic
// ordering: timestamp first, then the enqueue sequence number. Events
// scheduled for the same virtual instant therefore execute in the exact
// order they were scheduled, which pins the spawn order of same-time
// arrivals.
type EventQueue struct {
	items []*scheduledEvent
}

// scheduledEvent pairs an Event with its enqueue sequence number.
type scheduledEvent struct {
	ev  Event
	seq uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	eq := &EventQueue{items: make([]*scheduledEvent, 0)}
	heap.Init(eq)
	return eq
}

// Len implements heap.Interface.
func (eq *EventQueue) Len() int { return len(eq.items) }

// Less implements heap.Interface: timestamp, then enqueue order.
func (eq *EventQueue) Less(i, j int) bool {
	ei, ej := eq.items[i], eq.items[j]
	if ei.ev.Timestamp() != ej.ev.Timestamp() {
		return ei.ev.Timestamp() < ej.ev.Timestamp()
	}
	return ei.seq < ej.seq
}

// Swap implements heap.Interface.
func (eq *EventQueue) Swap(i, j int) {
	eq.items[i], eq.items[j] = eq.items[j], eq.items[i]
}

// Push implements heap.Interface.
func (eq *EventQueue) Push(x any) {
	eq.items = append(eq.items, x.(*scheduledEvent))
}

// Pop implements heap.Interface.
func (eq *EventQueue) Pop() any {
	old := eq.items
	n := len(old)
	item := old[n-1]
	eq.items = old[0 : n-1]
	return item
}

// PushEvent enqueues an event with the given sequence number.
func (eq *EventQueue) PushEvent(ev Event, seq uint64) {
	heap.Push(eq, &scheduledEvent{ev: ev, seq: seq})
}

// PopNext removes and returns the earliest event, or nil if empty.
func (eq *EventQueue) PopNext() Event {
	if eq.Len() == 0 {
		return nil
	}
	return heap.Pop(eq).(*scheduledEvent).ev
}

// Peek returns the earliest event without removing it, or nil if empty.
func (eq *EventQueue) Peek() Event {
	if eq.Len() == 0 {
		return nil
	}
	return eq.items[0].ev
}
