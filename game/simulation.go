package game

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// Simulation owns one snake/food state and applies one discrete step per call.
// It is not safe for concurrent use; the owning loop serialises access.
type Simulation struct {
	cfg       Config
	grid      Grid
	body      *Body
	direction Direction
	food      Point
	hasFood   bool
	score     int
	status    Status
	reason    Reason
	steps     int

	rng      *rand.Rand
	listener Listener
}

// Option customises a Simulation
type Option func(*Simulation)

// WithSeed makes food placement reproducible
func WithSeed(seed uint64) Option {
	return func(s *Simulation) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects the random source used for food placement
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) {
		s.rng = rng
	}
}

// WithListener registers the receiver of score and status events
func WithListener(l Listener) Option {
	return func(s *Simulation) {
		s.listener = l
	}
}

func newSimulation(opts []Option) *Simulation {
	s := &Simulation{}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

// New creates a simulation and resets it with cfg.
func New(cfg Config, opts ...Option) (*Simulation, error) {
	s := newSimulation(opts)
	if err := s.Reset(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Restore builds a simulation from an explicit snapshot. When the snapshot has
// no food and free cells remain, food is spawned.
func Restore(snap Snapshot, opts ...Option) (*Simulation, error) {
	g := snap.Grid
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, g.Width, g.Height)
	}
	body, err := NewBody(snap.Snake)
	if err != nil {
		return nil, err
	}
	for _, c := range snap.Snake {
		if !g.Contains(c) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
	}
	if snap.HasFood && !g.Contains(snap.Food) {
		return nil, fmt.Errorf("%w: food %v", ErrOutOfBounds, snap.Food)
	}
	if snap.HasFood && body.Contains(snap.Food) {
		return nil, fmt.Errorf("%w: %v", ErrFoodOnSnake, snap.Food)
	}
	if snap.Direction > Left {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, snap.Direction)
	}

	s := newSimulation(opts)
	s.cfg = Config{
		Width:            g.Width,
		Height:           g.Height,
		InitialLength:    body.Len(),
		InitialDirection: snap.Direction,
		FoodScore:        1,
	}
	s.grid = g
	s.body = body
	s.direction = snap.Direction
	s.food, s.hasFood = snap.Food, snap.HasFood
	s.score = snap.Score
	s.status = snap.Status
	s.reason = snap.Reason
	s.steps = snap.Steps
	if !s.hasFood && s.status != Over {
		s.food, s.hasFood = placeFood(g, body, s.rng)
	}
	return s, nil
}

// Reset starts a new round. On a configuration error the current state is
// left untouched.
func (s *Simulation) Reset(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	body, err := NewBody(cfg.startingBody())
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.grid = cfg.Grid()
	s.body = body
	s.direction = cfg.InitialDirection
	s.score = 0
	s.status = Ready
	s.reason = ReasonNone
	s.steps = 0
	s.food, s.hasFood = placeFood(s.grid, s.body, s.rng)
	return nil
}

// Step advances the round by one move in the requested direction. A Ready
// round starts on its first step; Paused and Over rounds ignore the call.
func (s *Simulation) Step(requested Direction) Snapshot {
	switch s.status {
	case Ready:
		s.setStatus(Running)
	case Paused, Over:
		return s.Snapshot()
	}

	dir := ResolveDirection(s.direction, requested, s.body.Len())
	next := s.body.Head().Add(dir)
	grow := s.hasFood && next == s.food

	if reason := Collision(s.grid, s.body, next, grow); reason != ReasonNone {
		s.finish(reason)
		return s.Snapshot()
	}

	s.direction = dir
	s.body.Advance(next, grow)
	s.steps++

	if grow {
		delta := s.cfg.foodScore()
		s.score += delta
		s.food, s.hasFood = placeFood(s.grid, s.body, s.rng)
		s.emit(Event{Kind: EventScored, Score: s.score, Delta: delta, Status: s.status})
		if !s.hasFood {
			s.finish(ReasonWin)
		}
	}
	return s.Snapshot()
}

// Start moves a Ready round to Running
func (s *Simulation) Start() {
	if s.status == Ready {
		s.setStatus(Running)
	}
}

// Pause suspends a Running round
func (s *Simulation) Pause() {
	if s.status == Running {
		s.setStatus(Paused)
	}
}

// Resume continues a Paused round
func (s *Simulation) Resume() {
	if s.status == Paused {
		s.setStatus(Running)
	}
}

// TogglePause flips between Running and Paused; other states are unaffected.
func (s *Simulation) TogglePause() {
	switch s.status {
	case Running:
		s.setStatus(Paused)
	case Paused:
		s.setStatus(Running)
	}
}

// Status returns the lifecycle state
func (s *Simulation) Status() Status {
	return s.status
}

// Score returns the current score
func (s *Simulation) Score() int {
	return s.score
}

// Config returns the configuration of the current round
func (s *Simulation) Config() Config {
	return s.cfg
}

// Snapshot returns a deep copy of the current state
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Grid:      s.grid,
		Snake:     s.body.Cells(),
		Direction: s.direction,
		Food:      s.food,
		HasFood:   s.hasFood,
		Score:     s.score,
		Status:    s.status,
		Reason:    s.reason,
		Steps:     s.steps,
	}
}

func (s *Simulation) setStatus(st Status) {
	s.status = st
	s.emit(Event{Kind: EventStatus, Score: s.score, Status: st})
}

func (s *Simulation) finish(r Reason) {
	s.status = Over
	s.reason = r
	s.emit(Event{Kind: EventOver, Score: s.score, Status: Over, Reason: r})
}

func (s *Simulation) emit(e Event) {
	if s.listener != nil {
		s.listener(e)
	}
}
