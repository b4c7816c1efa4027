package game

import (
	"fmt"

	"github.com/minaorangina/ludo/board"
)

// Player holds the positions of one player's two tokens
type Player struct {
	quadrant board.Quadrant
	tokens   map[board.Token]board.Position
}

// NewPlayer creates a player with both tokens in the home yard
func NewPlayer(q board.Quadrant) (*Player, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("%w: got %q", board.ErrInvalidQuadrant, q)
	}

	return &Player{
		quadrant: q,
		tokens: map[board.Token]board.Position{
			board.TokenP: {Kind: board.HomeYard},
			board.TokenQ: {Kind: board.HomeYard},
		},
	}, nil
}

func (p *Player) Quadrant() board.Quadrant {
	return p.quadrant
}

func (p *Player) StartSpace() int {
	return p.quadrant.StartSpace()
}

func (p *Player) EndSpace() int {
	return p.quadrant.EndSpace()
}

func (p *Player) Position(t board.Token) board.Position {
	return p.tokens[t]
}

// Steps returns the token's step count, from -1 (home yard) to 57 (end)
func (p *Player) Steps(t board.Token) int {
	return p.tokens[t].Steps(p.quadrant)
}

func (p *Player) SpaceName(t board.Token) string {
	return p.tokens[t].SpaceName(p.quadrant)
}

// SpaceNames returns the space names of p and q, in that order
func (p *Player) SpaceNames() []string {
	return []string{p.SpaceName(board.TokenP), p.SpaceName(board.TokenQ)}
}

// Stacked is true when both tokens share the same positive step count
func (p *Player) Stacked() bool {
	steps := p.Steps(board.TokenP)
	return steps > 0 && steps == p.Steps(board.TokenQ)
}

// Completed is true once both tokens have reached the end
func (p *Player) Completed() bool {
	return p.tokens[board.TokenP].Kind == board.Finished &&
		p.tokens[board.TokenQ].Kind == board.Finished
}

func (p *Player) place(t board.Token, steps int) error {
	pos, err := board.PositionAt(p.quadrant, steps)
	if err != nil {
		return err
	}
	p.tokens[t] = pos
	return nil
}

func (p *Player) sendHome(t board.Token) {
	p.tokens[t] = board.Position{Kind: board.HomeYard}
}
