package game

import "errors"

var (
	ErrNilGame          = errors.New("game is nil")
	ErrNoPlayers        = errors.New("game has no players")
	ErrTooManyPlayers   = errors.New("maximum of 4 players allowed")
	ErrDuplicatePlayer  = errors.New("quadrant already has a player")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrInvalidRoll      = errors.New("roll must be between 1 and 6")
	ErrInvalidGameState = errors.New("invalid game state")
)
