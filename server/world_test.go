package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuoShamin/openclaw-exec-snake-game/game"
)

func TestLeaderboardOrder(t *testing.T) {
	w := NewWorld()
	for i, best := range []int{3, 9, 3, 0} {
		s, err := NewSnake(fmt.Sprintf("id%d", i), fmt.Sprintf("n%d", i), testConfig(10, 10))
		require.NoError(t, err)
		s.Best = best
		w.AddSnake(s)
	}

	board := w.Leaderboard()
	require.Len(t, board, 4)
	assert.Equal(t, []LeaderboardEntry{
		{ID: "id1", Name: "n1", Score: 9},
		{ID: "id0", Name: "n0", Score: 3},
		{ID: "id2", Name: "n2", Score: 3},
		{ID: "id3", Name: "n3", Score: 0},
	}, board)
}

func TestLeaderboardTruncates(t *testing.T) {
	w := NewWorld()
	for i := 0; i < LeaderboardSize+3; i++ {
		s, err := NewSnake(fmt.Sprintf("id%02d", i), "x", testConfig(10, 10))
		require.NoError(t, err)
		s.Best = i
		w.AddSnake(s)
	}
	board := w.Leaderboard()
	assert.Len(t, board, LeaderboardSize)
	assert.Equal(t, LeaderboardSize+2, board[0].Score)
}

func TestWithSnake(t *testing.T) {
	w := NewWorld()
	s, err := NewSnake("a", "a", testConfig(10, 10))
	require.NoError(t, err)
	w.AddSnake(s)

	assert.True(t, w.WithSnake("a", func(s *Snake) { s.SetAutopilot(true) }))
	assert.True(t, s.Autopilot)
	assert.False(t, w.WithSnake("missing", func(*Snake) { t.Fatal("called for missing snake") }))
}

func TestBotsRespawnAfterDelay(t *testing.T) {
	w := NewWorld()
	bm := NewBotManager(w, testConfig(6, 6), 2, log.NewNopLogger())

	bm.MaintainBotCount()
	bm.MaintainBotCount()
	bm.MaintainBotCount()
	require.Equal(t, 2, bm.Count())
	require.Len(t, w.Snakes, 2)

	var id string
	for botID, s := range w.Snakes {
		assert.True(t, s.IsBot)
		assert.True(t, s.Autopilot)
		assert.Equal(t, game.Running, s.Status())
		id = botID
	}

	// Without a planner the bot runs straight into the wall.
	w.Snakes[id].Advance(10*time.Second, nil)
	require.Equal(t, game.Over, w.Snakes[id].Status())

	bm.HandleDeaths()
	assert.Equal(t, BotRespawnDelay, bm.bots[id].respawnIn)

	for i := 0; i < BotRespawnDelay-1; i++ {
		bm.tickRespawns()
	}
	assert.Equal(t, game.Over, w.Snakes[id].Status())
	bm.tickRespawns()
	assert.Equal(t, game.Running, w.Snakes[id].Status())
	assert.Zero(t, bm.bots[id].respawnIn)
	assert.Equal(t, 2, bm.Count())
}
