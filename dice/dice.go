// Package dice supplies die rolls for turn scripts.
//
// The rules engine never rolls dice itself; it replays a script of
// (player, roll) pairs. This package produces such scripts.
//
// # Determinism
//
// A Seeded source with the same seed always yields the same rolls, so a
// generated script can be reproduced from its seed alone.
package dice

import (
	"errors"
	"math/rand"

	"github.com/minaorangina/ludo/board"
	"github.com/minaorangina/ludo/protocol"
)

const Sides = 6

var (
	ErrNoPlayers        = errors.New("at least one player is required")
	ErrInvalidTurnCount = errors.New("turn count must not be negative")
)

// Source produces one die roll between 1 and 6 per call
type Source interface {
	Roll() int
}

// Seeded is a deterministic Source
type Seeded struct {
	rng *rand.Rand
}

func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

func (s *Seeded) Roll() int {
	return s.rng.Intn(Sides) + 1
}

// Script deals turns to the players round robin, one roll each
func Script(players []board.Quadrant, turns int, src Source) (protocol.Script, error) {
	if len(players) == 0 {
		return protocol.Script{}, ErrNoPlayers
	}
	if turns < 0 {
		return protocol.Script{}, ErrInvalidTurnCount
	}

	s := protocol.Script{
		Players: append([]board.Quadrant{}, players...),
		Turns:   make([]protocol.Turn, 0, turns),
	}
	for i := 0; i < turns; i++ {
		s.Turns = append(s.Turns, protocol.Turn{
			Player: players[i%len(players)],
			Roll:   src.Roll(),
		})
	}

	return s, nil
}
