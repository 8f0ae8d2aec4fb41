package main

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuoShamin/openclaw-exec-snake-game/game"
)

func TestRateLimiter(t *testing.T) {
	now := time.Unix(1000, 0)
	rl := newIPRateLimiter(2 * time.Second)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("1.2.3.4"))
	assert.False(t, rl.allow("1.2.3.4"))
	assert.True(t, rl.allow("5.6.7.8"))

	now = now.Add(2 * time.Second)
	assert.True(t, rl.allow("1.2.3.4"))

	now = now.Add(time.Minute)
	rl.sweep()
	assert.Empty(t, rl.times)
}

func readMsg(t *testing.T, ws *websocket.Conn, v interface{}) {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := ws.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v))
}

func TestWebSocketSession(t *testing.T) {
	settings := defaultSettings()
	settings.Bots = 1
	settings.StaticDir = t.TempDir()
	srv := NewServer(settings, log.NewNopLogger())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + WebSocketPath

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer ws.Close()

	var welcome WelcomeMsg
	readMsg(t, ws, &welcome)
	assert.Equal(t, MsgWelcome, welcome.Type)
	assert.Equal(t, GridWidth, welcome.Width)
	assert.Equal(t, GridHeight, welcome.Height)
	require.NotEmpty(t, welcome.ID)

	require.NoError(t, ws.WriteJSON(ClientMessage{Type: MsgJoin, Name: "tester"}))
	require.Eventually(t, func() bool {
		return srv.world.WithSnake(welcome.ID, func(*Snake) {})
	}, 2*time.Second, 10*time.Millisecond)

	srv.loop.tick(time.Second / TickRate)

	var state StateMsg
	readMsg(t, ws, &state)
	assert.Equal(t, MsgState, state.Type)
	assert.Equal(t, game.Running.String(), state.Status)
	assert.Len(t, state.Snake, InitialLength)
	assert.NotNil(t, state.Food)
	assert.Len(t, state.Leaderboard, 2, "player and bot")

	require.NoError(t, ws.WriteJSON(ClientMessage{Type: MsgPause}))
	require.Eventually(t, func() bool {
		paused := false
		srv.world.WithSnake(welcome.ID, func(s *Snake) { paused = s.Status() == game.Paused })
		return paused
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, ws.WriteJSON(ClientMessage{Type: MsgAutopilot, On: 1}))
	require.Eventually(t, func() bool {
		on := false
		srv.world.WithSnake(welcome.ID, func(s *Snake) { on = s.Autopilot })
		return on
	}, 2*time.Second, 10*time.Millisecond)

	// A second connection from the same address inside the cooldown is refused.
	second, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	var refused ErrorMsg
	readMsg(t, second, &refused)
	assert.Equal(t, MsgError, refused.Type)
	second.Close()

	ws.Close()
	require.Eventually(t, func() bool {
		return srv.conns.Count() == 0 && !srv.world.WithSnake(welcome.ID, func(*Snake) {})
	}, 2*time.Second, 10*time.Millisecond)
}
