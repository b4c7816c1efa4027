package game

import (
	"testing"

	"github.com/minaorangina/ludo/board"
	"github.com/stretchr/testify/require"
)

// seat places a player's tokens at the given step counts
type seat struct {
	quadrant board.Quadrant
	p, q     int
}

func newTestGame(t *testing.T, seats ...seat) *Game {
	t.Helper()

	players := []board.Quadrant{}
	for _, s := range seats {
		players = append(players, s.quadrant)
	}

	g, err := New(Opts{Players: players})
	require.NoError(t, err)

	for _, s := range seats {
		player, err := g.Player(s.quadrant)
		require.NoError(t, err)
		require.NoError(t, player.place(board.TokenP, s.p))
		require.NoError(t, player.place(board.TokenQ, s.q))
	}

	return g
}

func mustPlayer(t *testing.T, g *Game, q board.Quadrant) *Player {
	t.Helper()

	p, err := g.Player(q)
	require.NoError(t, err)
	return p
}

func ruleNamed(t *testing.T, name string) rule {
	t.Helper()

	for _, r := range rules {
		if r.name == name {
			return r
		}
	}
	t.Fatalf("no rule named %q", name)
	return rule{}
}

func occupied(spaces ...string) map[string]int {
	m := map[string]int{}
	for _, s := range spaces {
		m[s]++
	}
	return m
}
