package game

import (
	"github.com/minaorangina/ludo/board"
)

const entryRoll = 6

// turnContext is everything the rules look at, captured before any token moves
type turnContext struct {
	moves    int
	p, q     int    // step counts
	pNext    string // space p would reach after moves, "" if off the board
	qNext    string
	occupied map[string]int // opponents' space names, with multiplicity
	stacked  bool
}

func newTurnContext(player *Player, opponents []*Player, moves int) turnContext {
	q := player.Quadrant()
	c := turnContext{
		moves:    moves,
		p:        player.Steps(board.TokenP),
		q:        player.Steps(board.TokenQ),
		occupied: map[string]int{},
		stacked:  player.Stacked(),
	}
	c.pNext = board.SpaceName(q, c.p+moves)
	c.qNext = board.SpaceName(q, c.q+moves)

	for _, opp := range opponents {
		for _, name := range opp.SpaceNames() {
			c.occupied[name]++
		}
	}

	return c
}

func (c turnContext) contested(space string) bool {
	return space != "" && c.occupied[space] > 0
}

func inHomeRow(steps int) bool {
	return steps >= board.FirstRowStep
}

// action is the tokens a rule moves and by how much. Tokens move one after another.
type action struct {
	tokens []board.Token
	steps  int
}

type rule struct {
	name   string
	decide func(c turnContext) (action, bool)
}

func moveP(c turnContext) action    { return action{[]board.Token{board.TokenP}, c.moves} }
func moveQ(c turnContext) action    { return action{[]board.Token{board.TokenQ}, c.moves} }
func moveBoth(c turnContext) action { return action{[]board.Token{board.TokenP, board.TokenQ}, c.moves} }

func when(cond func(c turnContext) bool, act func(c turnContext) action) func(c turnContext) (action, bool) {
	return func(c turnContext) (action, bool) {
		if !cond(c) {
			return action{}, false
		}
		return act(c), true
	}
}

// rules are evaluated in order; the first match decides the turn
var rules = []rule{
	// entering play
	{"entry-both-idle", when(
		func(c turnContext) bool { return c.p == board.HomeYardSteps && c.q == board.HomeYardSteps && c.moves == entryRoll },
		func(c turnContext) action { return action{[]board.Token{board.TokenP}, 1} },
	)},
	{"entry-one-idle", func(c turnContext) (action, bool) {
		if c.moves != entryRoll {
			return action{}, false
		}
		t := board.TokenP
		if c.steps(t) != board.HomeYardSteps {
			t = t.Other()
		}
		if c.steps(t) != board.HomeYardSteps {
			return action{}, false
		}
		return action{[]board.Token{t}, 1}, true
	}},

	// finishing
	{"stacked-finish", when(
		func(c turnContext) bool { return c.stacked && c.q+c.moves == board.EndSteps },
		moveBoth,
	)},
	{"row-finish-p-behind", when(
		func(c turnContext) bool { return inHomeRow(c.p) && c.p < c.q && c.p+c.moves == board.EndSteps },
		moveP,
	)},
	{"row-finish-q-behind", when(
		func(c turnContext) bool { return inHomeRow(c.q) && c.q < c.p && c.q+c.moves == board.EndSteps },
		moveQ,
	)},
	{"row-finish-p", when(
		func(c turnContext) bool { return inHomeRow(c.p) && c.p+c.moves == board.EndSteps },
		moveP,
	)},
	{"row-finish-q", when(
		func(c turnContext) bool { return inHomeRow(c.q) && c.q+c.moves == board.EndSteps },
		moveQ,
	)},

	// capturing
	{"stacked-capture", when(
		func(c turnContext) bool { return c.stacked && c.contested(c.pNext) },
		moveBoth,
	)},
	{"capture-p", when(
		func(c turnContext) bool { return c.contested(c.pNext) },
		moveP,
	)},
	{"capture-q", when(
		func(c turnContext) bool { return c.contested(c.qNext) },
		moveQ,
	)},
	{"capture-p-behind", when(
		func(c turnContext) bool { return 0 <= c.p && c.p < c.q && c.contested(c.pNext) },
		moveP,
	)},
	{"capture-q-behind", when(
		func(c turnContext) bool { return 0 <= c.q && c.q < c.p && c.contested(c.qNext) },
		moveQ,
	)},

	// plain advancement
	{"stacked-advance", when(
		func(c turnContext) bool { return c.stacked && 0 < c.p && c.p < board.EndSteps },
		moveBoth,
	)},
	{"both-ready", when(
		func(c turnContext) bool { return c.p == board.ReadySteps && c.q == board.ReadySteps },
		moveP,
	)},
	{"advance-p-behind", when(
		func(c turnContext) bool { return 0 <= c.p && c.p < c.q },
		moveP,
	)},
	{"advance-q-behind", when(
		func(c turnContext) bool { return 0 <= c.q && c.q < c.p },
		moveQ,
	)},
	{"advance-p-alone", when(
		func(c turnContext) bool { return 0 <= c.p && c.q == board.HomeYardSteps },
		moveP,
	)},
	{"advance-q-alone", when(
		func(c turnContext) bool { return 0 <= c.q && c.p == board.HomeYardSteps },
		moveQ,
	)},
}

func (c turnContext) steps(t board.Token) int {
	if t == board.TokenP {
		return c.p
	}
	return c.q
}

// selectRule returns the first rule that applies, or ok=false when the turn has no effect
func selectRule(c turnContext) (name string, act action, ok bool) {
	for _, r := range rules {
		if act, ok := r.decide(c); ok {
			return r.name, act, true
		}
	}
	return "", action{}, false
}
