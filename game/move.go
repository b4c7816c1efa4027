package game

import (
	"fmt"

	"github.com/minaorangina/ludo/board"
	"github.com/minaorangina/ludo/protocol"
)

type occupant struct {
	player *Player
	token  board.Token
	space  string
}

// occupancy snapshots where every opponent token is before anything moves
func occupancy(opponents []*Player) []occupant {
	occupants := []occupant{}
	for _, opp := range opponents {
		for _, t := range board.Tokens {
			occupants = append(occupants, occupant{opp, t, opp.SpaceName(t)})
		}
	}
	return occupants
}

// rebound returns the steps actually taken: a token that would pass the end
// bounces back by the excess.
func rebound(from, steps int) int {
	if from+steps <= board.EndSteps {
		return steps
	}
	return (board.EndSteps - from) - (from + steps - board.EndSteps)
}

// advance moves one token and then, if it landed on the shared track,
// captures every opponent token on the same space.
func (g *Game) advance(player *Player, t board.Token, steps int) (protocol.Move, []protocol.Capture, error) {
	opponents, err := g.Opponents(player.Quadrant())
	if err != nil {
		return protocol.Move{}, nil, err
	}
	occupants := occupancy(opponents)

	from := player.Steps(t)
	move := protocol.Move{
		Token: t,
		From:  player.SpaceName(t),
		Steps: rebound(from, steps),
	}

	if err := player.place(t, from+move.Steps); err != nil {
		return protocol.Move{}, nil, fmt.Errorf("%w: moving %s%s from %d by %d: %s",
			ErrInvalidGameState, player.Quadrant(), t, from, steps, err.Error())
	}
	move.To = player.SpaceName(t)

	if !player.Position(t).Capturable() {
		return move, nil, nil
	}

	captures := []protocol.Capture{}
	for _, o := range occupants {
		if o.space != move.To {
			continue
		}
		o.player.sendHome(o.token)
		captures = append(captures, protocol.Capture{
			Player: o.player.Quadrant(),
			Token:  o.token,
			Space:  o.space,
		})
	}

	return move, captures, nil
}
