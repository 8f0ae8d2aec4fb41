package game

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Body is an ordered snake, head first, together with its occupancy set.
// The set always holds exactly the cells of the slice.
type Body struct {
	cells []Point
	occ   mapset.Set[Point]
}

// NewBody copies cells into a Body. Cells must be non-empty and distinct.
func NewBody(cells []Point) (*Body, error) {
	if len(cells) == 0 {
		return nil, ErrEmptySnake
	}
	b := &Body{
		cells: make([]Point, len(cells)),
		occ:   mapset.New[Point](),
	}
	copy(b.cells, cells)
	for _, c := range cells {
		if b.occ.Has(c) {
			return nil, fmt.Errorf("%w: %v", ErrOverlap, c)
		}
		b.occ.Put(c)
	}
	return b, nil
}

// Head returns the first cell
func (b *Body) Head() Point {
	return b.cells[0]
}

// Tail returns the last cell
func (b *Body) Tail() Point {
	return b.cells[len(b.cells)-1]
}

// Len returns the number of cells
func (b *Body) Len() int {
	return len(b.cells)
}

// Cells returns a copy of the cells, head first
func (b *Body) Cells() []Point {
	out := make([]Point, len(b.cells))
	copy(out, b.cells)
	return out
}

// Contains reports whether p is covered by the body
func (b *Body) Contains(p Point) bool {
	return b.occ.Has(p)
}

// Occupied returns a fresh copy of the occupancy set that the caller may
// modify freely.
func (b *Body) Occupied() mapset.Set[Point] {
	out := mapset.New[Point]()
	b.occ.Each(func(p Point) {
		out.Put(p)
	})
	return out
}

// Clone returns an independent copy
func (b *Body) Clone() *Body {
	c := &Body{cells: make([]Point, len(b.cells)), occ: b.Occupied()}
	copy(c.cells, b.cells)
	return c
}

// Collides reports whether moving the head onto next hits the body. When the
// snake does not grow the tail vacates its cell this step, so it is exempt.
func (b *Body) Collides(next Point, grow bool) bool {
	if !b.occ.Has(next) {
		return false
	}
	return grow || next != b.Tail()
}

// Advance inserts next as the new head and, unless grow is set, drops the
// tail. The tail leaves the set before the head enters it so a head moving
// into the vacated tail cell stays occupied.
func (b *Body) Advance(next Point, grow bool) {
	if !grow {
		tail := b.Tail()
		b.occ.Remove(tail)
		b.cells = b.cells[:len(b.cells)-1]
	}
	b.cells = append(b.cells, Point{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = next
	b.occ.Put(next)
}
