package main

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/GuoShamin/openclaw-exec-snake-game/game"
)

// botNames is the pool of Vietnamese-style names for AI bots
var botNames = []string{
	"Rắn Thần", "Sấm Sét", "Bão Tố", "Tia Chớp", "Ma Tốc Độ",
	"Rồng Lửa", "Bóng Đêm", "Sát Thủ", "Độc Xà", "Vua Rắn",
	"Hắc Mamba", "Kim Xà", "Thanh Xà", "Bạch Xà", "Viper",
	"Cobra", "Mamba", "Python", "Anaconda", "Sidewinder",
}

// Bot tracks per-bot bookkeeping; steering is done by the autopilot.
type Bot struct {
	ID        string
	respawnIn int // countdown ticks before the next round (0 = playing or ready)
}

// BotManager keeps a fixed number of headless autopilot snakes playing.
type BotManager struct {
	world     *World
	cfg       game.Config
	target    int
	bots      map[string]*Bot // botID -> Bot
	nameCount int
	logger    log.Logger
}

// NewBotManager creates a BotManager bound to the given world
func NewBotManager(world *World, cfg game.Config, target int, logger log.Logger) *BotManager {
	return &BotManager{
		world:  world,
		cfg:    cfg,
		target: target,
		bots:   make(map[string]*Bot),
		logger: logger,
	}
}

// SpawnBot creates a new bot snake with the autopilot on and adds it to the
// world. Caller must NOT hold world.mu; this method acquires the write lock.
func (bm *BotManager) SpawnBot() error {
	id := "bot-" + uuid.NewString()
	name := botNames[bm.nameCount%len(botNames)]
	bm.nameCount++

	snake, err := NewSnake(id, name, bm.cfg)
	if err != nil {
		return err
	}
	snake.IsBot = true
	snake.Autopilot = true
	snake.Start()

	bm.world.mu.Lock()
	bm.world.AddSnake(snake)
	bm.world.mu.Unlock()

	bm.bots[id] = &Bot{ID: id}
	level.Debug(bm.logger).Log("msg", "bot spawned", "bot", id, "name", name)
	return nil
}

// HandleDeaths starts the respawn countdown of every bot whose round is over.
// Must be called while world.mu is held.
func (bm *BotManager) HandleDeaths() {
	for botID, bot := range bm.bots {
		snake, ok := bm.world.Snakes[botID]
		if !ok {
			delete(bm.bots, botID)
			continue
		}
		if snake.Status() == game.Over && bot.respawnIn == 0 {
			bot.respawnIn = BotRespawnDelay
		}
	}
}

// tickRespawns decrements respawn counters and restarts bots that are ready.
// Must be called while world.mu is NOT held.
func (bm *BotManager) tickRespawns() {
	var ready []string
	for botID, bot := range bm.bots {
		if bot.respawnIn <= 0 {
			continue
		}
		bot.respawnIn--
		if bot.respawnIn == 0 {
			ready = append(ready, botID)
		}
	}
	for _, id := range ready {
		var err error
		found := bm.world.WithSnake(id, func(s *Snake) {
			err = s.Restart()
		})
		if !found || err != nil {
			level.Warn(bm.logger).Log("msg", "bot restart failed", "bot", id, "found", found, "err", err)
			delete(bm.bots, id)
		}
	}
}

// MaintainBotCount keeps the configured number of bots (playing + waiting).
// Must be called while world.mu is NOT held.
func (bm *BotManager) MaintainBotCount() {
	bm.tickRespawns()

	if len(bm.bots) < bm.target {
		if err := bm.SpawnBot(); err != nil {
			level.Error(bm.logger).Log("msg", "bot spawn failed", "err", err)
		}
	}
}

// Count returns the number of managed bots
func (bm *BotManager) Count() int {
	return len(bm.bots)
}
