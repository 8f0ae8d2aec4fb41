// Package autopilot chooses moves for a snake from a read-only snapshot.
//
// The planner tries, in order: a shortest path to the food that still leaves
// the tail reachable after eating, a path to its own tail, and the legal move
// with the most open space around it. When none applies it has no preference
// and the caller keeps its heading, which usually ends the round.
package autopilot

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/GuoShamin/openclaw-exec-snake-game/game"
)

// Strategy names the tier that produced a decision
type Strategy uint8

const (
	StrategyNone Strategy = iota
	StrategyFoodPath
	StrategyTailChase
	StrategyOpenSpace
)

func (s Strategy) String() string {
	switch s {
	case StrategyFoodPath:
		return "food"
	case StrategyTailChase:
		return "tail"
	case StrategyOpenSpace:
		return "space"
	}
	return "none"
}

// Weights tune the open-space fallback. Only the ordering matters: more room
// beats being closer to the food.
type Weights struct {
	Space    int
	Distance int
}

// DefaultWeights scores ten points per reachable cell and minus two per cell
// of distance to the food.
var DefaultWeights = Weights{Space: 10, Distance: 2}

// Decision is the planner's answer. OK is false when there is no preference.
type Decision struct {
	Direction game.Direction
	OK        bool
	Strategy  Strategy
}

// Planner is stateless apart from its settings and may be shared.
type Planner struct {
	weights Weights
	logger  log.Logger
}

// Option configures a Planner
type Option func(*Planner)

// WithWeights replaces DefaultWeights
func WithWeights(w Weights) Option {
	return func(p *Planner) {
		p.weights = w
	}
}

// WithLogger sends per-decision debug records to logger
func WithLogger(logger log.Logger) Option {
	return func(p *Planner) {
		p.logger = logger
	}
}

// New returns a planner with default weights and no logging
func New(opts ...Option) *Planner {
	p := &Planner{
		weights: DefaultWeights,
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ChooseDirection returns the next move, or ok == false for no preference.
func (p *Planner) ChooseDirection(snap game.Snapshot) (game.Direction, bool, error) {
	d, err := p.Decide(snap)
	if err != nil {
		return 0, false, err
	}
	return d.Direction, d.OK, nil
}

// Decide runs the tiers in priority order. The snapshot is never modified; all
// lookahead runs on copies. Only a malformed snapshot is an error.
func (p *Planner) Decide(snap game.Snapshot) (Decision, error) {
	if snap.Len() == 0 {
		return Decision{}, fmt.Errorf("autopilot: %w", game.ErrEmptySnake)
	}
	body, err := snap.Body()
	if err != nil {
		return Decision{}, fmt.Errorf("autopilot: %w", err)
	}

	logger := log.With(p.logger, "head", fmt.Sprint(body.Head()), "len", body.Len())

	// The tail vacates before any path shorter than the snake reaches it.
	blocked := body.Occupied()
	blocked.Remove(body.Head())
	blocked.Remove(body.Tail())

	if d, ok := p.foodPath(snap, blocked, logger); ok {
		return p.commit(logger, d, StrategyFoodPath), nil
	}

	if path, ok := FindPath(snap.Grid, body.Head(), body.Tail(), blocked); ok && len(path) > 0 && !reverses(snap, path[0]) {
		return p.commit(logger, path[0], StrategyTailChase), nil
	}

	if d, ok := p.openSpace(snap); ok {
		return p.commit(logger, d, StrategyOpenSpace), nil
	}

	_ = level.Debug(logger).Log("msg", "no legal move")
	return Decision{Strategy: StrategyNone}, nil
}

// foodPath finds a shortest path to the food and accepts it only when, after
// eating along it, the new head can still reach the new tail.
func (p *Planner) foodPath(snap game.Snapshot, blocked blockedSet, logger log.Logger) (game.Direction, bool) {
	if !snap.HasFood {
		return 0, false
	}
	path, ok := FindPath(snap.Grid, snap.Head(), snap.Food, blocked)
	if !ok || len(path) == 0 || reverses(snap, path[0]) {
		return 0, false
	}

	after, ok := SimulateAlongPath(snap, path)
	if !ok {
		_ = level.Debug(logger).Log("msg", "food path collides", "steps", len(path))
		return 0, false
	}

	rest := after.Occupied()
	rest.Remove(after.Head())
	rest.Remove(after.Tail())
	if _, ok := FindPath(snap.Grid, after.Head(), after.Tail(), rest); !ok {
		_ = level.Debug(logger).Log("msg", "food path traps tail", "steps", len(path))
		return 0, false
	}
	return path[0], true
}

// openSpace scores every legal move by the room left after taking it and the
// distance still to cover to the food. Ties keep the earliest direction.
func (p *Planner) openSpace(snap game.Snapshot) (game.Direction, bool) {
	var (
		best  game.Direction
		score int
		found bool
	)
	for _, d := range LegalMoves(snap) {
		after, ok := SimulateAlongPath(snap, []game.Direction{d})
		if !ok {
			continue
		}
		head := after.Head()
		occ := after.Occupied()
		occ.Remove(head)

		s := p.weights.Space * FloodFillSize(snap.Grid, head, occ)
		if snap.HasFood {
			s -= p.weights.Distance * head.Manhattan(snap.Food)
		}
		if !found || s > score {
			best, score, found = d, s, true
		}
	}
	return best, found
}

func (p *Planner) commit(logger log.Logger, d game.Direction, s Strategy) Decision {
	_ = level.Debug(logger).Log("msg", "decided", "strategy", s, "dir", d)
	return Decision{Direction: d, OK: true, Strategy: s}
}

// reverses reports whether d is the 180° turn the simulation would ignore.
func reverses(snap game.Snapshot, d game.Direction) bool {
	return game.ResolveDirection(snap.Direction, d, snap.Len()) != d
}
