package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionOpposites(t *testing.T) {
	for i, d := range Directions {
		assert.Equal(t, Directions[(i+2)%4], d.Opposite())
		back := d.Opposite().Delta()
		assert.Equal(t, Point{}, Point{X: d.Delta().X + back.X, Y: d.Delta().Y + back.Y})
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.Letter())
		require.NoError(t, err)
		assert.Equal(t, d, got)

		got, err = ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDirection("sideways")
	assert.True(t, errors.Is(err, ErrUnknownDirection))
}

func TestDirectionBetween(t *testing.T) {
	d, ok := DirectionBetween(Point{2, 2}, Point{2, 1})
	require.True(t, ok)
	assert.Equal(t, Up, d)

	_, ok = DirectionBetween(Point{2, 2}, Point{3, 3})
	assert.False(t, ok)
}

func TestGridNeighbors(t *testing.T) {
	g := Grid{Width: 3, Height: 3}
	assert.Equal(t, []Point{{1, 0}, {0, 1}}, g.Neighbors(Point{0, 0}))
	assert.Len(t, g.Neighbors(Point{1, 1}), 4)
	assert.Equal(t, Point{2, 1}, g.At(g.Index(Point{2, 1})))
}

func TestResolveDirection(t *testing.T) {
	assert.Equal(t, Right, ResolveDirection(Right, Left, 3))
	assert.Equal(t, Left, ResolveDirection(Right, Left, 1))
	assert.Equal(t, Up, ResolveDirection(Right, Up, 3))
}

func TestBodyAdvanceKeepsOccupancy(t *testing.T) {
	b, err := NewBody([]Point{{0, 0}})
	require.NoError(t, err)

	b.Advance(Point{1, 0}, false)
	assert.Equal(t, []Point{{1, 0}}, b.Cells())
	assert.False(t, b.Contains(Point{0, 0}))
	assert.True(t, b.Contains(Point{1, 0}))

	b.Advance(Point{2, 0}, true)
	assert.Equal(t, []Point{{2, 0}, {1, 0}}, b.Cells())
	assert.Equal(t, 2, b.Occupied().Size())

	c := b.Clone()
	c.Advance(Point{3, 0}, false)
	assert.Equal(t, []Point{{2, 0}, {1, 0}}, b.Cells(), "clone must not alias")
}
