package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/minaorangina/ludo/board"
	"gopkg.in/yaml.v3"
)

// Turn is one scripted die roll for one player
type Turn struct {
	Player board.Quadrant `json:"player" yaml:"player" validate:"required,oneof=A B C D"`
	Roll   int            `json:"roll" yaml:"roll" validate:"min=1,max=6"`
}

func (t Turn) String() string {
	return fmt.Sprintf("(%s, %d)", t.Player, t.Roll)
}

// turnTuple is the compact [player, roll] form of a Turn
type turnTuple []interface{}

var errBadTuple = errors.New("turn must be [player, roll]")

func (t *Turn) fromTuple(tuple turnTuple) error {
	if len(tuple) != 2 {
		return errBadTuple
	}
	player, ok := tuple[0].(string)
	if !ok {
		return errBadTuple
	}

	var roll int
	switch r := tuple[1].(type) {
	case int:
		roll = r
	case float64:
		roll = int(r)
		if float64(roll) != r {
			return errBadTuple
		}
	default:
		return errBadTuple
	}

	t.Player = board.Quadrant(player)
	t.Roll = roll
	return nil
}

// UnmarshalJSON accepts {"player": "A", "roll": 6} or ["A", 6]
func (t *Turn) UnmarshalJSON(data []byte) error {
	var tuple turnTuple
	if err := json.Unmarshal(data, &tuple); err == nil {
		return t.fromTuple(tuple)
	}

	type plain Turn
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = Turn(p)
	return nil
}

// UnmarshalYAML accepts {player: A, roll: 6} or [A, 6]
func (t *Turn) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var tuple turnTuple
		if err := value.Decode(&tuple); err != nil {
			return err
		}
		return t.fromTuple(tuple)
	}

	type plain Turn
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*t = Turn(p)
	return nil
}

// Script is a roster of players and the turns they take, in order
type Script struct {
	Players []board.Quadrant `json:"players" yaml:"players" validate:"min=1,max=4,unique,dive,oneof=A B C D"`
	Turns   []Turn           `json:"turns" yaml:"turns" validate:"dive"`
}

// Move is a single token advance made during a turn
type Move struct {
	Token board.Token `json:"token"`
	From  string      `json:"from"`
	To    string      `json:"to"`
	Steps int         `json:"steps"`
}

// Capture is an opponent token sent back to its home yard
type Capture struct {
	Player board.Quadrant `json:"player"`
	Token  board.Token    `json:"token"`
	Space  string         `json:"space"`
}

// TurnOutcome records what a turn did. Rule is empty when no rule applied
// and the turn had no effect.
type TurnOutcome struct {
	Index    int       `json:"index"`
	Turn     Turn      `json:"turn"`
	Rule     string    `json:"rule,omitempty"`
	Moves    []Move    `json:"moves,omitempty"`
	Captures []Capture `json:"captures,omitempty"`
}

func (o TurnOutcome) Moved() bool {
	return len(o.Moves) > 0
}
