package autopilot

import "github.com/GuoShamin/openclaw-exec-snake-game/game"

// SimulateAlongPath replays the step rules along path on a private copy of the
// snapshot's snake and returns the resulting body. It reports false as soon as
// a move would collide, or would be a reversal the simulation ignores. Food
// eaten on the way is not replaced, since its next position is unknown.
func SimulateAlongPath(snap game.Snapshot, path []game.Direction) (*game.Body, bool) {
	body, err := snap.Body()
	if err != nil {
		return nil, false
	}
	heading := snap.Direction
	food, hasFood := snap.Food, snap.HasFood

	for _, d := range path {
		if game.ResolveDirection(heading, d, body.Len()) != d {
			return nil, false
		}
		next := body.Head().Add(d)
		grow := hasFood && next == food
		if game.Collision(snap.Grid, body, next, grow) != game.ReasonNone {
			return nil, false
		}
		body.Advance(next, grow)
		heading = d
		if grow {
			hasFood = false
		}
	}
	return body, true
}

// LegalMoves lists, in enumeration order, the moves that neither reverse a
// snake longer than one cell nor collide on the next step.
func LegalMoves(snap game.Snapshot) []game.Direction {
	if snap.Len() == 0 {
		return nil
	}
	body, err := snap.Body()
	if err != nil {
		return nil
	}
	var moves []game.Direction
	for _, d := range game.Directions {
		if game.ResolveDirection(snap.Direction, d, body.Len()) != d {
			continue
		}
		next := body.Head().Add(d)
		grow := snap.HasFood && next == snap.Food
		if game.Collision(snap.Grid, body, next, grow) == game.ReasonNone {
			moves = append(moves, d)
		}
	}
	return moves
}
