package main

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/GuoShamin/openclaw-exec-snake-game/autopilot"
	"github.com/GuoShamin/openclaw-exec-snake-game/game"
)

// GameLoop drives every snake at a fixed tick rate
type GameLoop struct {
	world     *World
	conns     *ConnManager
	bots      *BotManager
	planner   *autopilot.Planner
	logger    log.Logger
	tickCount int
}

// NewGameLoop creates a game loop bound to world and conn manager and
// pre-populates the BotManager with its initial bots.
func NewGameLoop(world *World, conns *ConnManager, settings Settings, logger log.Logger) *GameLoop {
	bm := NewBotManager(world, settings.GameConfig(), settings.Bots, logger)
	for i := 0; i < settings.Bots; i++ {
		if err := bm.SpawnBot(); err != nil {
			level.Error(logger).Log("msg", "bot spawn failed", "err", err)
		}
	}
	return &GameLoop{
		world:   world,
		conns:   conns,
		bots:    bm,
		planner: autopilot.New(autopilot.WithLogger(log.With(logger, "component", "autopilot"))),
		logger:  logger,
	}
}

// Run starts the fixed-timestep loop. Blocks until done is closed.
func (gl *GameLoop) Run(done <-chan struct{}) {
	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()
	level.Info(gl.logger).Log("msg", "game loop started", "tps", TickRate)

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			gl.tick(time.Second / TickRate)
		}
	}
}

// tick executes a single game update
func (gl *GameLoop) tick(dt time.Duration) {
	gl.tickCount++
	w := gl.world
	w.mu.Lock()

	// 1. Advance every running round by as many steps as its speed allows
	for _, s := range w.Snakes {
		s.Advance(dt, gl.planner)
	}

	// 2. Collect events; only connected players get them on the wire
	events := make(map[string][]game.Event)
	for id, s := range w.Snakes {
		drained := s.DrainEvents()
		for _, e := range drained {
			if e.Kind == game.EventOver {
				level.Info(gl.logger).Log("msg", "round over", "snake", id, "name", s.Name,
					"reason", e.Reason, "score", e.Score, "bot", s.IsBot)
			}
		}
		if !s.IsBot && len(drained) > 0 {
			events[id] = drained
		}
	}

	// 3. Start respawn countdowns for bots whose round ended
	gl.bots.HandleDeaths()

	leaderboard := w.Leaderboard()

	w.mu.Unlock()

	// 4. Tick bot respawn countdowns and top up the bot count (acquires lock internally)
	gl.bots.MaintainBotCount()

	// 5. Score and round-over events, then the state itself
	for id, list := range events {
		conn, ok := gl.conns.Get(id)
		if !ok {
			continue
		}
		for _, e := range list {
			gl.sendEvent(conn, e)
		}
	}
	gl.broadcast(leaderboard)
}

func (gl *GameLoop) sendEvent(c *Conn, e game.Event) {
	var msg interface{}
	switch e.Kind {
	case game.EventScored:
		msg = ScoredMsg{Type: MsgScored, Score: e.Score, Delta: e.Delta}
	case game.EventOver:
		msg = OverMsg{Type: MsgOver, Reason: e.Reason.String(), Score: e.Score}
	default:
		// status changes travel with the next state message
		return
	}
	if err := c.Send(msg); err != nil {
		level.Warn(gl.logger).Log("msg", "send error", "conn", c.ID, "err", err)
	}
}

// broadcast sends each connected player the state of its own round.
func (gl *GameLoop) broadcast(leaderboard []LeaderboardEntry) {
	w := gl.world
	conns := gl.conns.Snapshot()

	for _, c := range conns {
		w.mu.RLock()
		snake, ok := w.Snakes[c.ID]
		var msg StateMsg
		if ok {
			msg = newStateMsg(snake.Snapshot(), snake.Best, snake.Autopilot, leaderboard)
		} else {
			// not joined yet: leaderboard only
			msg = StateMsg{
				Type:        MsgState,
				Snake:       [][2]int{},
				Status:      game.Ready.String(),
				Leaderboard: leaderboard,
			}
		}
		w.mu.RUnlock()

		if err := c.Send(msg); err != nil {
			level.Warn(gl.logger).Log("msg", "send error", "conn", c.ID, "err", err)
		}
	}
}
