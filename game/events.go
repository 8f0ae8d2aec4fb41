package game

// EventKind identifies what changed
type EventKind uint8

const (
	// EventScored fires after the snake eats.
	EventScored EventKind = iota + 1
	// EventStatus fires on start, pause and resume.
	EventStatus
	// EventOver fires once when a round ends, carrying the reason.
	EventOver
)

// Event is delivered synchronously to the simulation's listener
type Event struct {
	Kind   EventKind
	Score  int
	Delta  int
	Status Status
	Reason Reason
}

// Listener receives simulation events on the caller's goroutine.
type Listener func(Event)
