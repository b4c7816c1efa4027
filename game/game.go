// Package game resolves Ludo turns. Each turn, an ordered list of rules picks
// which of the acting player's tokens move; moving onto an opponent's shared
// track space sends that opponent's token back to its home yard.
package game

import (
	"fmt"
	"io"
	"log"

	"github.com/minaorangina/ludo/board"
	"github.com/minaorangina/ludo/protocol"
)

const maxPlayers = 4

// Game owns the players, keyed by quadrant, in the order they were added
type Game struct {
	players map[board.Quadrant]*Player
	order   []board.Quadrant
	turns   int
	logger  *log.Logger
}

type Opts struct {
	Players []board.Quadrant
	Logger  *log.Logger
}

// New constructs a game with one player per quadrant in opts.Players
func New(opts Opts) (*Game, error) {
	if len(opts.Players) == 0 {
		return nil, ErrNoPlayers
	}
	if len(opts.Players) > maxPlayers {
		return nil, ErrTooManyPlayers
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	g := &Game{
		players: map[board.Quadrant]*Player{},
		order:   []board.Quadrant{},
		logger:  logger,
	}

	for _, q := range opts.Players {
		if err := g.AddPlayer(q); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// AddPlayer adds a player for q with both tokens in the home yard
func (g *Game) AddPlayer(q board.Quadrant) error {
	if g == nil {
		return ErrNilGame
	}
	if _, ok := g.players[q]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePlayer, q)
	}

	p, err := NewPlayer(q)
	if err != nil {
		return err
	}

	g.players[q] = p
	g.order = append(g.order, q)
	return nil
}

// Player looks up a player by quadrant
func (g *Game) Player(q board.Quadrant) (*Player, error) {
	p, ok := g.players[q]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, q)
	}
	return p, nil
}

// Players returns every player in the order they were added
func (g *Game) Players() []*Player {
	ps := make([]*Player, 0, len(g.order))
	for _, q := range g.order {
		ps = append(ps, g.players[q])
	}
	return ps
}

// Opponents returns every player other than q, in the order they were added
func (g *Game) Opponents(q board.Quadrant) ([]*Player, error) {
	if _, ok := g.players[q]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, q)
	}

	ps := []*Player{}
	for _, other := range g.order {
		if other != q {
			ps = append(ps, g.players[other])
		}
	}
	return ps, nil
}

// PlayTurn applies a single scripted turn. An invalid turn returns an error
// and changes nothing.
func (g *Game) PlayTurn(turn protocol.Turn) (protocol.TurnOutcome, error) {
	if g == nil {
		return protocol.TurnOutcome{}, ErrNilGame
	}
	if turn.Roll < 1 || turn.Roll > 6 {
		return protocol.TurnOutcome{}, fmt.Errorf("%w: got %d", ErrInvalidRoll, turn.Roll)
	}

	player, err := g.Player(turn.Player)
	if err != nil {
		return protocol.TurnOutcome{}, err
	}
	opponents, _ := g.Opponents(turn.Player)

	outcome := protocol.TurnOutcome{Index: g.turns, Turn: turn}
	g.turns++

	name, act, ok := selectRule(newTurnContext(player, opponents, turn.Roll))
	if !ok {
		g.logger.Printf("turn %d: %s rolled %d, no move", outcome.Index, turn.Player, turn.Roll)
		return outcome, nil
	}
	outcome.Rule = name

	for _, t := range act.tokens {
		move, captures, err := g.advance(player, t, act.steps)
		if err != nil {
			return outcome, err
		}
		outcome.Moves = append(outcome.Moves, move)
		outcome.Captures = append(outcome.Captures, captures...)
	}

	g.logger.Printf("turn %d: %s rolled %d, %s moved %v captured %v",
		outcome.Index, turn.Player, turn.Roll, name, outcome.Moves, outcome.Captures)

	return outcome, nil
}

// Play applies turns in order and stops at the first invalid one
func (g *Game) Play(turns []protocol.Turn) ([]protocol.TurnOutcome, error) {
	outcomes := make([]protocol.TurnOutcome, 0, len(turns))
	for i, turn := range turns {
		outcome, err := g.PlayTurn(turn)
		if err != nil {
			return outcomes, fmt.Errorf("turn %d %s: %w", i, turn, err)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// Result lists each player's p and q space names, players in the order they were added
func (g *Game) Result() []string {
	result := make([]string, 0, 2*len(g.order))
	for _, p := range g.Players() {
		result = append(result, p.SpaceNames()...)
	}
	return result
}

// Completed lists the quadrants whose tokens have both reached the end
func (g *Game) Completed() []board.Quadrant {
	done := []board.Quadrant{}
	for _, p := range g.Players() {
		if p.Completed() {
			done = append(done, p.Quadrant())
		}
	}
	return done
}

// PlayGame creates the players, plays every turn and returns the final space names
func PlayGame(players []board.Quadrant, turns []protocol.Turn) ([]string, error) {
	g, err := New(Opts{Players: players})
	if err != nil {
		return nil, err
	}
	if _, err := g.Play(turns); err != nil {
		return nil, err
	}
	return g.Result(), nil
}
