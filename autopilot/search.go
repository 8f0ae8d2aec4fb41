package autopilot

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/GuoShamin/openclaw-exec-snake-game/game"
)

// blockedSet holds the cells a search may not enter
type blockedSet = mapset.Set[game.Point]

// FindPath runs a breadth-first search from start to goal over the
// 4-neighbour grid, never entering blocked cells except the goal itself. It
// returns the moves of one shortest path; which one among equals depends on
// neighbour order and callers must not rely on it. start == goal yields an
// empty path.
func FindPath(g game.Grid, start, goal game.Point, blocked blockedSet) ([]game.Direction, bool) {
	if !g.Contains(start) || !g.Contains(goal) {
		return nil, false
	}
	if start == goal {
		return []game.Direction{}, true
	}

	// via[i] is the move that first reached cell i, plus one; zero is unseen.
	via := make([]uint8, g.Cells())
	via[g.Index(start)] = 1 + uint8(game.Up)
	queue := []game.Point{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range game.Directions {
			next := cur.Add(d)
			if !g.Contains(next) {
				continue
			}
			i := g.Index(next)
			if via[i] != 0 {
				continue
			}
			if next != goal && blocked.Has(next) {
				continue
			}
			via[i] = 1 + uint8(d)
			if next == goal {
				return unwind(g, via, start, goal), true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

func unwind(g game.Grid, via []uint8, start, goal game.Point) []game.Direction {
	var path []game.Direction
	for p := goal; p != start; {
		d := game.Direction(via[g.Index(p)] - 1)
		path = append(path, d)
		p = p.Add(d.Opposite())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FloodFillSize counts the cells reachable from start, start included, moving
// between 4-neighbours that are not blocked.
func FloodFillSize(g game.Grid, start game.Point, blocked blockedSet) int {
	if !g.Contains(start) {
		return 0
	}
	seen := make([]bool, g.Cells())
	seen[g.Index(start)] = true
	queue := []game.Point{start}
	count := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++

		for _, next := range g.Neighbors(cur) {
			i := g.Index(next)
			if seen[i] || blocked.Has(next) {
				continue
			}
			seen[i] = true
			queue = append(queue, next)
		}
	}
	return count
}
