// Package memstore provides an in-memory holdem.Repository
package memstore

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"holdem-engine/pkg/holdem"
)

// Store keeps games and winner records in memory. It is safe for concurrent
// use, but callers still own the single-writer-per-game discipline the
// service requires.
type Store struct {
	mu      sync.RWMutex
	games   map[uuid.UUID]*holdem.Game
	winners map[uuid.UUID][]*holdem.Winner
}

// New returns an empty store
func New() *Store {
	return &Store{
		games:   make(map[uuid.UUID]*holdem.Game),
		winners: make(map[uuid.UUID][]*holdem.Winner),
	}
}

// Game returns the game with the given ID
func (s *Store) Game(id uuid.UUID) (*holdem.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[id]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", id)
	}

	return game, nil
}

// SaveGame stores the game, replacing any previous version
func (s *Store) SaveGame(g *holdem.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games[g.ID] = g
	return nil
}

// SaveWinners appends settlement records for a hand
func (s *Store) SaveWinners(winners []*holdem.Winner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range winners {
		s.winners[w.HandID] = append(s.winners[w.HandID], w)
	}

	return nil
}

// Winners returns the settlement records for a hand. A hand with no recorded
// winners returns an empty slice.
func (s *Store) Winners(handID uuid.UUID) ([]*holdem.Winner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.winners[handID], nil
}
