package main

import (
	"encoding/json"
	"sync"
	"unicode/utf8"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/GuoShamin/openclaw-exec-snake-game/game"
)

// MaxNameLength caps player names, in runes
const MaxNameLength = 16

// Conn manages a single WebSocket player session
type Conn struct {
	ID     string
	Name   string
	ws     *websocket.Conn
	mu     sync.Mutex // protects ws writes
	closed bool
	logger log.Logger
}

// NewConn creates a new connection wrapper
func NewConn(ws *websocket.Conn, logger log.Logger) *Conn {
	id := uuid.New().String()
	return &Conn{
		ID:     id,
		ws:     ws,
		logger: log.With(logger, "conn", id),
	}
}

// Send serializes msg to JSON and writes it to the WebSocket
func (c *Conn) Send(msg interface{}) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// Close marks connection closed
func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.ws.Close()
}

// ConnManager manages all active connections
type ConnManager struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

// NewConnManager creates an empty connection manager
func NewConnManager() *ConnManager {
	return &ConnManager{conns: make(map[string]*Conn)}
}

// Add registers a connection
func (m *ConnManager) Add(c *Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[c.ID] = c
}

// Remove unregisters a connection
func (m *ConnManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, id)
}

// Get returns a connection by ID
func (m *ConnManager) Get(id string) (*Conn, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.conns[id]
	return c, ok
}

// Count returns the number of active connections
func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

// Snapshot returns a copy of all current connections
func (m *ConnManager) Snapshot() []*Conn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]*Conn, 0, len(m.conns))
	for _, c := range m.conns {
		list = append(list, c)
	}
	return list
}

// ReadLoop handles incoming messages for a connection until it disconnects.
// onJoin is called for a join message; every other command is applied to
// the connection's snake in world.
func (c *Conn) ReadLoop(
	world *World,
	onJoin func(conn *Conn, name string),
	onDisconnect func(conn *Conn),
) {
	defer func() {
		onDisconnect(c)
		c.Close()
	}()

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				level.Warn(c.logger).Log("msg", "ws read error", "err", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			level.Debug(c.logger).Log("msg", "bad message", "err", err)
			continue
		}
		c.handle(world, msg, onJoin)
	}
}

func (c *Conn) handle(world *World, msg ClientMessage, onJoin func(conn *Conn, name string)) {
	switch msg.Type {
	case MsgJoin:
		name := sanitizeName(msg.Name)
		c.Name = name
		onJoin(c, name)

	case MsgInput:
		dir, err := game.ParseDirection(msg.Direction)
		if err != nil {
			level.Debug(c.logger).Log("msg", "bad direction", "err", err)
			return
		}
		world.WithSnake(c.ID, func(s *Snake) { s.QueueDirection(dir) })

	case MsgPause:
		world.WithSnake(c.ID, (*Snake).TogglePause)

	case MsgRestart:
		world.WithSnake(c.ID, func(s *Snake) {
			if err := s.Restart(); err != nil {
				level.Error(c.logger).Log("msg", "restart failed", "err", err)
			}
		})

	case MsgAutopilot:
		on := msg.On == 1
		world.WithSnake(c.ID, func(s *Snake) { s.SetAutopilot(on) })

	default:
		level.Debug(c.logger).Log("msg", "unknown message type", "type", msg.Type)
	}
}

// sanitizeName defaults an empty name and truncates long ones
func sanitizeName(name string) string {
	if name == "" {
		return "Player"
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = string([]rune(name)[:MaxNameLength])
	}
	return name
}
