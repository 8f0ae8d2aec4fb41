package main

import (
	"time"

	"github.com/GuoShamin/openclaw-exec-snake-game/autopilot"
	"github.com/GuoShamin/openclaw-exec-snake-game/game"
)

// Snake is one player's (or bot's) snake: its current round plus everything
// that survives a restart.
type Snake struct {
	ID        string
	Name      string
	IsBot     bool
	Best      int  // best score across rounds
	Autopilot bool // planner steers when no manual turn is queued

	sim     *game.Simulation
	queue   []game.Direction // pending manual turns, oldest first
	elapsed time.Duration    // time banked toward the next step
	events  []game.Event     // emitted since the last DrainEvents
}

// NewSnake creates a snake with a fresh round in the Ready state.
func NewSnake(id, name string, cfg game.Config, opts ...game.Option) (*Snake, error) {
	s := &Snake{ID: id, Name: name}
	opts = append(opts, game.WithListener(s.record))
	sim, err := game.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	s.sim = sim
	return s, nil
}

func (s *Snake) record(e game.Event) {
	if e.Kind == game.EventScored && e.Score > s.Best {
		s.Best = e.Score
	}
	s.events = append(s.events, e)
}

// Start begins a Ready round
func (s *Snake) Start() {
	s.sim.Start()
}

// Restart throws away the current round and starts a new one.
func (s *Snake) Restart() error {
	if err := s.sim.Reset(s.sim.Config()); err != nil {
		return err
	}
	s.queue = s.queue[:0]
	s.elapsed = 0
	s.sim.Start()
	return nil
}

// TogglePause pauses a running round or resumes a paused one
func (s *Snake) TogglePause() {
	s.sim.TogglePause()
}

// SetAutopilot switches the planner on or off
func (s *Snake) SetAutopilot(on bool) {
	s.Autopilot = on
}

// QueueDirection buffers a manual turn. Turns that repeat or reverse the last
// queued (or current) direction are dropped, as is anything past
// MaxQueuedTurns. Reports whether the turn was kept.
func (s *Snake) QueueDirection(d game.Direction) bool {
	if len(s.queue) >= MaxQueuedTurns {
		return false
	}
	snap := s.sim.Snapshot()
	last := snap.Direction
	if n := len(s.queue); n > 0 {
		last = s.queue[n-1]
	}
	if d == last || (d == last.Opposite() && snap.Len() > 1) {
		return false
	}
	s.queue = append(s.queue, d)
	return true
}

// Advance banks dt and runs as many steps as the current speed allows.
// Returns the number of steps taken.
func (s *Snake) Advance(dt time.Duration, planner *autopilot.Planner) int {
	if s.sim.Status() != game.Running {
		s.elapsed = 0
		return 0
	}
	s.elapsed += dt

	steps := 0
	for s.sim.Status() == game.Running {
		interval := stepInterval(s.sim.Score())
		if s.elapsed < interval {
			break
		}
		s.elapsed -= interval
		s.sim.Step(s.nextDirection(planner))
		steps++
	}
	return steps
}

// nextDirection prefers a queued manual turn, then the planner when the
// autopilot is on, then the current heading.
func (s *Snake) nextDirection(planner *autopilot.Planner) game.Direction {
	if len(s.queue) > 0 {
		d := s.queue[0]
		s.queue = s.queue[1:]
		return d
	}
	snap := s.sim.Snapshot()
	if s.Autopilot && planner != nil {
		if d, ok, err := planner.ChooseDirection(snap); err == nil && ok {
			return d
		}
	}
	return snap.Direction
}

// DrainEvents returns and clears the events emitted since the last call
func (s *Snake) DrainEvents() []game.Event {
	events := s.events
	s.events = nil
	return events
}

// Snapshot returns a copy of the current round
func (s *Snake) Snapshot() game.Snapshot {
	return s.sim.Snapshot()
}

// Status returns the lifecycle state of the current round
func (s *Snake) Status() game.Status {
	return s.sim.Status()
}

// Score returns the score of the current round
func (s *Snake) Score() int {
	return s.sim.Score()
}
