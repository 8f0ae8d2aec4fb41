package game

import "golang.org/x/exp/rand"

// foodSampleTries bounds rejection sampling before falling back to
// enumerating the free cells, which keeps placement finite on a crowded board.
const foodSampleTries = 64

// placeFood picks a uniformly random cell not covered by body. It returns
// false when the grid is full.
func placeFood(g Grid, body *Body, rng *rand.Rand) (Point, bool) {
	free := g.Cells() - body.Len()
	if free <= 0 {
		return Point{}, false
	}

	for i := 0; i < foodSampleTries; i++ {
		p := Point{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
		if !body.Contains(p) {
			return p, true
		}
	}

	cells := make([]Point, 0, free)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			if !body.Contains(p) {
				cells = append(cells, p)
			}
		}
	}
	if len(cells) == 0 {
		return Point{}, false
	}
	return cells[rng.Intn(len(cells))], true
}
