package main

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/websocket"
)

// ipRateLimiter tracks last connection time per IP to prevent abuse
type ipRateLimiter struct {
	mu       sync.Mutex
	times    map[string]time.Time
	cooldown time.Duration
	now      func() time.Time
}

func newIPRateLimiter(cooldown time.Duration) *ipRateLimiter {
	return &ipRateLimiter{
		times:    make(map[string]time.Time),
		cooldown: cooldown,
		now:      time.Now,
	}
}

// allow returns true if this IP can connect, and records the attempt
func (rl *ipRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	if last, ok := rl.times[ip]; ok && now.Sub(last) < rl.cooldown {
		return false
	}
	rl.times[ip] = now
	return true
}

// sweep drops entries older than the cooldown
func (rl *ipRateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := rl.now().Add(-rl.cooldown)
	for ip, t := range rl.times {
		if t.Before(cutoff) {
			delete(rl.times, ip)
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for development; tighten in production
		return true
	},
	ReadBufferSize:    1024,
	WriteBufferSize:   4096,
	EnableCompression: true,
}

// sendErrorAndClose sends an error message via WebSocket then closes the connection
func sendErrorAndClose(ws *websocket.Conn, msg string) {
	data, _ := json.Marshal(ErrorMsg{Type: MsgError, Message: msg})
	_ = ws.WriteMessage(websocket.TextMessage, data)
	ws.Close()
}

// clientIP prefers the first X-Forwarded-For hop for reverse proxies
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// Server ties the world, connections and game loop to HTTP handlers.
type Server struct {
	settings Settings
	world    *World
	conns    *ConnManager
	loop     *GameLoop
	limiter  *ipRateLimiter
	logger   log.Logger
}

// NewServer wires a server from settings
func NewServer(settings Settings, logger log.Logger) *Server {
	world := NewWorld()
	conns := NewConnManager()
	return &Server{
		settings: settings,
		world:    world,
		conns:    conns,
		loop:     NewGameLoop(world, conns, settings, logger),
		limiter:  newIPRateLimiter(IPCooldownSec * time.Second),
		logger:   logger,
	}
}

// Handler returns the HTTP mux: the WebSocket endpoint plus static files.
func (srv *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(WebSocketPath, srv.serveWS)
	mux.Handle("/", http.FileServer(http.Dir(srv.settings.StaticDir)))
	return mux
}

func (srv *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		level.Warn(srv.logger).Log("msg", "ws upgrade error", "ip", ip, "err", err)
		return
	}

	// Check limits after upgrade so client can receive error messages
	if srv.conns.Count() >= MaxPlayers {
		sendErrorAndClose(ws, "Server full. Please try again later.")
		return
	}
	if !srv.limiter.allow(ip) {
		sendErrorAndClose(ws, "Too many connections. Please wait a moment.")
		return
	}

	ws.EnableWriteCompression(true)

	conn := NewConn(ws, srv.logger)
	srv.conns.Add(conn)
	level.Info(srv.logger).Log("msg", "player connected", "conn", conn.ID, "ip", ip)

	// Send welcome immediately so client knows its ID and board size
	_ = conn.Send(WelcomeMsg{
		Type:   MsgWelcome,
		ID:     conn.ID,
		Width:  srv.settings.Width,
		Height: srv.settings.Height,
	})

	onJoin := func(c *Conn, name string) {
		snake, err := NewSnake(c.ID, name, srv.settings.GameConfig())
		if err != nil {
			level.Error(c.logger).Log("msg", "join failed", "err", err)
			return
		}
		srv.world.mu.Lock()
		// A second join replaces the round but keeps the best score
		if old, exists := srv.world.Snakes[c.ID]; exists {
			snake.Best = old.Best
			snake.Autopilot = old.Autopilot
		}
		snake.Start()
		srv.world.AddSnake(snake)
		srv.world.mu.Unlock()
		level.Info(c.logger).Log("msg", "snake joined", "name", name)
	}

	onDisconnect := func(c *Conn) {
		srv.conns.Remove(c.ID)
		srv.world.mu.Lock()
		srv.world.RemoveSnake(c.ID)
		srv.world.mu.Unlock()
		level.Info(c.logger).Log("msg", "player disconnected")
	}

	// Blocking read loop, runs until client disconnects
	conn.ReadLoop(srv.world, onJoin, onDisconnect)
}

// Run starts the game loop and the limiter sweep; both stop when done closes.
func (srv *Server) Run(done <-chan struct{}) {
	go srv.loop.Run(done)
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				srv.limiter.sweep()
			}
		}
	}()
}

func main() {
	settings, err := loadSettings(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := newLogger(os.Stderr, settings.LogLevel)
	if err != nil {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
		level.Error(logger).Log("msg", "bad log level", "err", err)
		os.Exit(2)
	}

	srv := NewServer(settings, logger)
	done := make(chan struct{})
	srv.Run(done)

	level.Info(logger).Log("msg", "server listening", "addr", settings.Addr,
		"width", settings.Width, "height", settings.Height, "bots", settings.Bots)
	if err := http.ListenAndServe(settings.Addr, srv.Handler()); err != nil {
		level.Error(logger).Log("msg", "server error", "err", err)
		close(done)
		os.Exit(1)
	}
}
