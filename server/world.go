package main

import (
	"sort"
	"sync"
)

// World holds every snake on the server, players and bots alike. Each snake
// plays its own board; the world only shares the leaderboard.
type World struct {
	mu     sync.RWMutex
	Snakes map[string]*Snake
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{Snakes: make(map[string]*Snake)}
}

// AddSnake adds a snake, replacing any with the same ID (caller must hold mu.Lock)
func (w *World) AddSnake(s *Snake) {
	w.Snakes[s.ID] = s
}

// RemoveSnake removes a snake (caller must hold mu.Lock)
func (w *World) RemoveSnake(id string) {
	delete(w.Snakes, id)
}

// WithSnake runs fn on the snake with the given ID under the write lock.
// Reports whether the snake exists.
func (w *World) WithSnake(id string, fn func(s *Snake)) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, ok := w.Snakes[id]
	if !ok {
		return false
	}
	fn(s)
	return true
}

// Leaderboard returns the top LeaderboardSize snakes by best score
// (caller must hold at least RLock). Ties are ordered by name, then ID.
func (w *World) Leaderboard() []LeaderboardEntry {
	snakes := make([]*Snake, 0, len(w.Snakes))
	for _, s := range w.Snakes {
		snakes = append(snakes, s)
	}
	sort.Slice(snakes, func(i, j int) bool {
		a, b := snakes[i], snakes[j]
		if a.Best != b.Best {
			return a.Best > b.Best
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	if len(snakes) > LeaderboardSize {
		snakes = snakes[:LeaderboardSize]
	}
	entries := make([]LeaderboardEntry, len(snakes))
	for i, s := range snakes {
		entries[i] = LeaderboardEntry{ID: s.ID, Name: s.Name, Score: s.Best}
	}
	return entries
}
