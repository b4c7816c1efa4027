package board

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrStepOutOfRange = errors.New("step count out of range")

// Step counts measured from a player's own entry point
const (
	HomeYardSteps  = -1
	ReadySteps     = 0
	FirstTrackStep = 1
	LastTrackStep  = 50
	FirstRowStep   = 51
	LastRowStep    = 56
	EndSteps       = 57

	// TrackSlots is the size of the absolute slot numbering the shared track wraps over
	TrackSlots = 56
)

const (
	SpaceHomeYard = "H"
	SpaceReady    = "R"
	SpaceEnd      = "E"
)

// Kind is the category of board space a token occupies
type Kind int

const (
	HomeYard Kind = iota
	Ready
	OnTrack
	HomeRow
	Finished
)

var kindNames = []string{
	"HomeYard",
	"Ready",
	"OnTrack",
	"HomeRow",
	"Finished",
}

func (k Kind) String() string {
	if k < HomeYard || k > Finished {
		return "Unknown"
	}
	return kindNames[k]
}

// Position is where a token is. Slot is set for OnTrack (0..55, absolute and
// shared by every player); Index is set for HomeRow (1..6, private to the owner).
type Position struct {
	Kind  Kind
	Slot  int
	Index int
}

// KindOf categorises a step count. ok is false outside [-1, 57].
func KindOf(steps int) (kind Kind, ok bool) {
	switch {
	case steps == HomeYardSteps:
		return HomeYard, true
	case steps == ReadySteps:
		return Ready, true
	case steps >= FirstTrackStep && steps <= LastTrackStep:
		return OnTrack, true
	case steps >= FirstRowStep && steps <= LastRowStep:
		return HomeRow, true
	case steps == EndSteps:
		return Finished, true
	}
	return 0, false
}

// PositionAt converts a step count for the owner q into a Position
func PositionAt(q Quadrant, steps int) (Position, error) {
	kind, ok := KindOf(steps)
	if !ok {
		return Position{}, fmt.Errorf("%w: %d", ErrStepOutOfRange, steps)
	}

	switch kind {
	case OnTrack:
		return Position{Kind: OnTrack, Slot: (steps + q.StartSpace() - 1) % TrackSlots}, nil
	case HomeRow:
		return Position{Kind: HomeRow, Index: steps - LastTrackStep}, nil
	}

	return Position{Kind: kind}, nil
}

// Steps converts the position back to the owner's step count
func (p Position) Steps(q Quadrant) int {
	switch p.Kind {
	case HomeYard:
		return HomeYardSteps
	case Ready:
		return ReadySteps
	case OnTrack:
		return ((p.Slot-q.StartSpace()+1)%TrackSlots + TrackSlots) % TrackSlots
	case HomeRow:
		return LastTrackStep + p.Index
	case Finished:
		return EndSteps
	}
	return HomeYardSteps
}

// SpaceName renders the position as a board label: H, R, E, an absolute slot
// number such as "17", or a home row label such as "A3".
func (p Position) SpaceName(q Quadrant) string {
	switch p.Kind {
	case Ready:
		return SpaceReady
	case OnTrack:
		return strconv.Itoa(p.Slot)
	case HomeRow:
		return string(q) + strconv.Itoa(p.Index)
	case Finished:
		return SpaceEnd
	}
	return SpaceHomeYard
}

// Capturable reports whether an opponent landing here sends the token home
func (p Position) Capturable() bool {
	return p.Kind == OnTrack
}

func (p Position) String() string {
	switch p.Kind {
	case OnTrack:
		return fmt.Sprintf("%s(%d)", p.Kind, p.Slot)
	case HomeRow:
		return fmt.Sprintf("%s(%d)", p.Kind, p.Index)
	}
	return p.Kind.String()
}

// SpaceName is the label for q's token after steps, or "" when steps is off the board
func SpaceName(q Quadrant, steps int) string {
	pos, err := PositionAt(q, steps)
	if err != nil {
		return ""
	}
	return pos.SpaceName(q)
}
