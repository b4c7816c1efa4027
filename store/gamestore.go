// Package store keeps the games played through the server so they can be
// fetched and replayed later.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/ludo/board"
	"github.com/minaorangina/ludo/protocol"
)

var (
	ErrUnknownGameID   = errors.New("unknown game ID")
	ErrMissingGameID   = errors.New("missing game ID")
	ErrDuplicateGameID = errors.New("game ID already exists")
)

// Record is a game that has been played to the end of its script
type Record struct {
	ID        string                 `json:"game_id"`
	Script    protocol.Script        `json:"script"`
	Outcomes  []protocol.TurnOutcome `json:"outcomes"`
	Result    []string               `json:"result"`
	Completed []board.Quadrant       `json:"completed"`
}

type GameStore interface {
	FindGame(gameID string) (Record, error)
	AddGame(record Record) error
	GameIDs() []string
}

// InMemoryGameStore maps game id to game record
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]Record
	order []string
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]Record{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.games[gameID]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownGameID, gameID)
	}

	return record, nil
}

func (s *InMemoryGameStore) AddGame(record Record) error {
	if record.ID == "" {
		return ErrMissingGameID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[record.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateGameID, record.ID)
	}

	s.games[record.ID] = record
	s.order = append(s.order, record.ID)
	return nil
}

// GameIDs lists the stored games, oldest first
func (s *InMemoryGameStore) GameIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string{}, s.order...)
}
