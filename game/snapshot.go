package game

// Snapshot is a read-only copy of a simulation's state. Mutating it never
// affects the simulation it came from.
type Snapshot struct {
	Grid      Grid
	Snake     []Point // head first
	Direction Direction
	Food      Point
	HasFood   bool
	Score     int
	Status    Status
	Reason    Reason
	Steps     int
}

// Head returns the first snake cell
func (s Snapshot) Head() Point {
	return s.Snake[0]
}

// Tail returns the last snake cell
func (s Snapshot) Tail() Point {
	return s.Snake[len(s.Snake)-1]
}

// Len returns the snake length
func (s Snapshot) Len() int {
	return len(s.Snake)
}

// Body rebuilds an independent Body from the snapshot cells.
func (s Snapshot) Body() (*Body, error) {
	return NewBody(s.Snake)
}

// Clone returns a deep copy
func (s Snapshot) Clone() Snapshot {
	c := s
	c.Snake = make([]Point, len(s.Snake))
	copy(c.Snake, s.Snake)
	return c
}
