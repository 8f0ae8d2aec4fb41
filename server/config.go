package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/GuoShamin/openclaw-exec-snake-game/game"
)

// Server configuration constants
const (
	// Server
	ServerPort    = ":8080"
	StaticDir     = "../client"
	WebSocketPath = "/ws"
	MaxPlayers    = 200
	IPCooldownSec = 2 // seconds between connections from one IP

	// Game loop
	TickRate = 60 // ticks per second

	// Board
	GridWidth     = 25
	GridHeight    = 25
	InitialLength = 3

	// Speed curve: cells per second = BaseSpeed + score/SpeedEveryScore, capped
	BaseSpeed       = 7
	SpeedEveryScore = 4
	MaxSpeed        = 18

	// Input
	MaxQueuedTurns = 2 // buffered direction changes per session

	// Leaderboard
	LeaderboardSize = 10

	// Bots: headless autopilot sessions
	BotCount        = 5
	BotRespawnDelay = 180 // ticks after a bot's round ends (~3 sec at 60 tps)
)

// Settings are the values that may be overridden at startup by flags and
// environment variables; flags win over the environment.
type Settings struct {
	Addr      string
	StaticDir string
	Width     int
	Height    int
	Bots      int
	LogLevel  string
}

func defaultSettings() Settings {
	return Settings{
		Addr:      ServerPort,
		StaticDir: StaticDir,
		Width:     GridWidth,
		Height:    GridHeight,
		Bots:      BotCount,
		LogLevel:  "info",
	}
}

// loadSettings reads SNAKE_* environment variables, then parses args.
func loadSettings(args []string) (Settings, error) {
	s := defaultSettings()
	if env := os.Getenv("SNAKE_ADDR"); env != "" {
		s.Addr = env
	}
	if env := os.Getenv("SNAKE_STATIC_DIR"); env != "" {
		s.StaticDir = env
	}
	if env := os.Getenv("SNAKE_LOG_LEVEL"); env != "" {
		s.LogLevel = env
	}
	if env := os.Getenv("SNAKE_BOTS"); env != "" {
		if n, err := strconv.Atoi(env); err == nil {
			s.Bots = n
		}
	}

	fs := flag.NewFlagSet("snake-server", flag.ContinueOnError)
	fs.StringVar(&s.Addr, "addr", s.Addr, "listen address")
	fs.StringVar(&s.StaticDir, "static", s.StaticDir, "directory of client files")
	fs.IntVar(&s.Width, "width", s.Width, "grid width in cells")
	fs.IntVar(&s.Height, "height", s.Height, "grid height in cells")
	fs.IntVar(&s.Bots, "bots", s.Bots, "number of autopilot bots")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	if err := s.GameConfig().Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// GameConfig is the round configuration every session starts with
func (s Settings) GameConfig() game.Config {
	return game.Config{
		Width:            s.Width,
		Height:           s.Height,
		InitialLength:    InitialLength,
		InitialDirection: game.Right,
		FoodScore:        1,
	}
}

// stepsPerSecond is the speed curve: faster as the score grows.
func stepsPerSecond(score int) int {
	speed := BaseSpeed + score/SpeedEveryScore
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	return speed
}

// stepInterval is the time between two steps at the given score
func stepInterval(score int) time.Duration {
	return time.Second / time.Duration(stepsPerSecond(score))
}
