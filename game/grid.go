package game

import (
	"fmt"
	"strings"
)

// Point is a cell coordinate on the grid
type Point struct {
	X int
	Y int
}

// Add returns the neighbouring cell one step in direction d
func (p Point) Add(d Direction) Point {
	delta := d.Delta()
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Manhattan returns the 4-neighbour distance between p and q
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Direction is one of the four unit moves.
type Direction uint8

// The enumeration order matters: each direction is the inverse of the one two
// positions away.
const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all moves in enumeration order
var Directions = [4]Direction{Up, Right, Down, Left}

var (
	directionDeltas = [4]Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	directionNames  = [4]string{"up", "right", "down", "left"}
)

// Opposite returns the 180° reversal of d
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the unit vector of d (y grows downward)
func (d Direction) Delta() Point {
	return directionDeltas[d%4]
}

func (d Direction) String() string {
	if d > Left {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Letter returns the one-letter wire form: U, R, D or L
func (d Direction) Letter() string {
	return strings.ToUpper(d.String()[:1])
}

// ParseDirection accepts full names and the one-letter forms, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return Up, nil
	case "r", "right":
		return Right, nil
	case "d", "down":
		return Down, nil
	case "l", "left":
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// DirectionBetween returns the direction leading from a to an adjacent b.
func DirectionBetween(a, b Point) (Direction, bool) {
	delta := Point{X: b.X - a.X, Y: b.Y - a.Y}
	for _, d := range Directions {
		if directionDeltas[d] == delta {
			return d, true
		}
	}
	return 0, false
}

// Grid is the fixed-size playing field
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside [0,Width)×[0,Height)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Index maps an in-bounds cell to a dense row-major index.
func (g Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// At is the inverse of Index
func (g Grid) At(i int) Point {
	return Point{X: i % g.Width, Y: i / g.Width}
}

// Neighbors returns the in-bounds 4-neighbours of p in enumeration order.
func (g Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range Directions {
		if n := p.Add(d); g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
