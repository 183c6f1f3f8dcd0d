package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventBallCollided is emitted once per object the ball bounced off.
	EventBallCollided = "ball_collided"
	// EventBallDestroyed is emitted when the ball crosses a side boundary.
	EventBallDestroyed = "ball_destroyed"
)

// BallDestroyed records which side a destroyed ball credited.
type BallDestroyed struct {
	PlayerScored bool
}

// EventQueue is a simple FIFO queue. Reads are non-destructive so multiple
// systems can observe the same event within a frame; the world flushes the
// queue at the end of each update.
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

// OfType returns the queued events with the given type, in push order.
func (q *EventQueue) OfType(t string) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
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
