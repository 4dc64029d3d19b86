package core

// EventKind identifies a discrete input event.
type EventKind int

const (
	EventNone  EventKind = iota
	EventQuit            // Q, Ctrl+C - leave the game loop
	EventJump            // Space, Up, W - flap
	EventClick           // Left mouse press, Pos holds the world point
	EventReset           // R - same as clicking the reset button
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventJump:
		return "Jump"
	case EventClick:
		return "Click"
	case EventReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// Event is a single input event. Pos is only meaningful for EventClick.
type Event struct {
	Kind EventKind
	Pos  Vec
}

// EventQueue collects events between two ticks.
// Drain hands them out in delivery order.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all queued events and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}
