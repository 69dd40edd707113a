package ecs

// Event is a generic world event payload.
type Event struct {
	Type string
	Data any
}

// EventTypeSpawn requests a new ship. Data is a SpawnRequest.
const EventTypeSpawn = "spawn"

// SpawnRequest asks the spawn system to create a ship at a world
// position with physics defaults.
type SpawnRequest struct {
	Faction uint32
	X, Y    float64
}

// EventQueue is a simple FIFO queue. Events not drained by a system
// before the tick ends are discarded.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
