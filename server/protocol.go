package main

import (
	"github.com/GuoShamin/openclaw-exec-snake-game/game"
)

// Protocol uses single-character JSON keys to minimize wire size.
// Coordinates are integer grid cells, origin top-left.
//
// Message type constants (value of "t" field):
//   Client → Server:
//     "j" = join       {"t":"j","n":"PlayerName"}
//     "i" = direction  {"t":"i","d":"U"}          (d = U/R/D/L)
//     "p" = pause      {"t":"p"}                  (toggle)
//     "r" = restart    {"t":"r"}
//     "a" = autopilot  {"t":"a","o":1}            (o = 1 on, 0 off)
//   Server → Client:
//     "w" = welcome    {"t":"w","i":"id","gw":25,"gh":25}
//     "s" = state      {"t":"s","s":[[x,y],...],"f":[x,y],"p":3,"b":7,"st":"running","a":0,"l":[...]}
//     "e" = scored     {"t":"e","p":4,"v":1}
//     "d" = round over {"t":"d","r":"wall","p":4}
//     "x" = error      {"t":"x","m":"message"}
//
// LeaderboardEntry: {"i":"id","n":"name","p":best}

// Message type identifiers
const (
	MsgJoin      = "j"
	MsgInput     = "i"
	MsgPause     = "p"
	MsgRestart   = "r"
	MsgAutopilot = "a"
	MsgWelcome   = "w"
	MsgState     = "s"
	MsgScored    = "e"
	MsgOver      = "d"
	MsgError     = "x"
)

// ClientMessage is the base incoming message from the browser.
type ClientMessage struct {
	Type      string `json:"t"`
	Name      string `json:"n,omitempty"`
	Direction string `json:"d,omitempty"`
	On        int    `json:"o,omitempty"` // 0 or 1
}

// WelcomeMsg is sent to a player immediately on WebSocket connect.
type WelcomeMsg struct {
	Type   string `json:"t"`
	ID     string `json:"i"`
	Width  int    `json:"gw"`
	Height int    `json:"gh"`
}

// LeaderboardEntry is a single leaderboard row.
type LeaderboardEntry struct {
	ID    string `json:"i"`
	Name  string `json:"n"`
	Score int    `json:"p"`
}

// StateMsg is the per-tick state of the receiving player's round.
// Food is null while the board has no free cell.
type StateMsg struct {
	Type        string             `json:"t"`
	Snake       [][2]int           `json:"s"`
	Food        *[2]int            `json:"f"`
	Score       int                `json:"p"`
	Best        int                `json:"b"`
	Status      string             `json:"st"`
	Autopilot   int                `json:"a"`
	Leaderboard []LeaderboardEntry `json:"l"`
}

// ScoredMsg reports a score change, one per food eaten.
type ScoredMsg struct {
	Type  string `json:"t"`
	Score int    `json:"p"`
	Delta int    `json:"v"`
}

// OverMsg is sent when a round ends.
// r = wall, self or win
type OverMsg struct {
	Type   string `json:"t"`
	Reason string `json:"r"`
	Score  int    `json:"p"`
}

// ErrorMsg is sent right before the server closes a connection it refuses.
type ErrorMsg struct {
	Type    string `json:"t"`
	Message string `json:"m"`
}

// newStateMsg encodes a snapshot for the wire
func newStateMsg(snap game.Snapshot, best int, autopilot bool, leaderboard []LeaderboardEntry) StateMsg {
	cells := make([][2]int, len(snap.Snake))
	for i, p := range snap.Snake {
		cells[i] = [2]int{p.X, p.Y}
	}
	msg := StateMsg{
		Type:        MsgState,
		Snake:       cells,
		Score:       snap.Score,
		Best:        best,
		Status:      snap.Status.String(),
		Leaderboard: leaderboard,
	}
	if snap.HasFood {
		msg.Food = &[2]int{snap.Food.X, snap.Food.Y}
	}
	if autopilot {
		msg.Autopilot = 1
	}
	return msg
}
