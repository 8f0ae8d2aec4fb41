package game

import "fmt"

// Config describes a round. Dimensions are fixed for the lifetime of a
// simulation instance.
type Config struct {
	Width            int
	Height           int
	InitialLength    int
	InitialDirection Direction
	FoodScore        int // points per food, 1 when zero
}

// DefaultConfig returns the board most variants ship with
func DefaultConfig() Config {
	return Config{
		Width:            25,
		Height:           25,
		InitialLength:    3,
		InitialDirection: Right,
		FoodScore:        1,
	}
}

// Grid returns the grid described by c
func (c Config) Grid() Grid {
	return Grid{Width: c.Width, Height: c.Height}
}

// Validate checks the grid is positive and the initial snake fits with room to
// spare along both axes.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, c.Width, c.Height)
	}
	if c.InitialLength < 1 || c.Width <= c.InitialLength || c.Height <= c.InitialLength {
		return fmt.Errorf("%w: length %d on %dx%d", ErrInitialLength, c.InitialLength, c.Width, c.Height)
	}
	if c.InitialDirection > Left {
		return fmt.Errorf("%w: %d", ErrUnknownDirection, c.InitialDirection)
	}
	return nil
}

func (c Config) foodScore() int {
	if c.FoodScore <= 0 {
		return 1
	}
	return c.FoodScore
}

// startingBody lays out a straight snake centred on the grid along the axis of
// the initial direction, head leading.
func (c Config) startingBody() []Point {
	n := c.InitialLength
	d := c.InitialDirection
	back := d.Opposite().Delta()

	var head Point
	switch d {
	case Right:
		head = Point{X: (c.Width-n)/2 + n - 1, Y: c.Height / 2}
	case Left:
		head = Point{X: (c.Width - n) / 2, Y: c.Height / 2}
	case Down:
		head = Point{X: c.Width / 2, Y: (c.Height-n)/2 + n - 1}
	default:
		head = Point{X: c.Width / 2, Y: (c.Height - n) / 2}
	}

	cells := make([]Point, n)
	for i := range cells {
		cells[i] = Point{X: head.X + i*back.X, Y: head.Y + i*back.Y}
	}
	return cells
}
