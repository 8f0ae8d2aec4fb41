package game

// Status is the simulation lifecycle state
type Status uint8

const (
	Ready Status = iota
	Running
	Paused
	Over
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	}
	return "unknown"
}

// Reason explains why a round reached Over.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonWall
	ReasonSelf
	ReasonWin
)

func (r Reason) String() string {
	switch r {
	case ReasonWall:
		return "wall"
	case ReasonSelf:
		return "self"
	case ReasonWin:
		return "win"
	}
	return ""
}

// ResolveDirection applies the no-reversal rule: a snake longer than one cell
// keeps its current heading when asked to turn back on itself.
func ResolveDirection(current, requested Direction, length int) Direction {
	if length > 1 && requested == current.Opposite() {
		return current
	}
	return requested
}

// Collision classifies moving the head of b onto next. It returns ReasonNone
// for a legal move.
func Collision(g Grid, b *Body, next Point, grow bool) Reason {
	if !g.Contains(next) {
		return ReasonWall
	}
	if b.Collides(next, grow) {
		return ReasonSelf
	}
	return ReasonNone
}
