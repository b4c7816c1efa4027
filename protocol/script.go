package protocol

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidScript     = errors.New("invalid script")
	ErrUnknownTurnPlayer = errors.New("turn player is not in the roster")
)

var validate = validator.New()

// ValidateScript checks a script at the boundary: 1 to 4 unique quadrants,
// every turn taken by a rostered player with a roll between 1 and 6.
func ValidateScript(s Script) error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}

	rostered := map[string]struct{}{}
	for _, q := range s.Players {
		rostered[string(q)] = struct{}{}
	}
	for i, t := range s.Turns {
		if _, ok := rostered[string(t.Player)]; !ok {
			return fmt.Errorf("%w: turn %d %s: %w", ErrInvalidScript, i, t, ErrUnknownTurnPlayer)
		}
	}

	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Namespace(),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("%w:\n  %s", ErrInvalidScript, strings.Join(messages, "\n  "))
	}
	return fmt.Errorf("%w: %s", ErrInvalidScript, err.Error())
}

// DecodeScript reads a YAML or JSON script and validates it
func DecodeScript(r io.Reader) (Script, error) {
	var s Script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if err == io.EOF {
			return Script{}, fmt.Errorf("%w: empty script", ErrInvalidScript)
		}
		return Script{}, fmt.Errorf("%w: %s", ErrInvalidScript, err.Error())
	}

	if err := ValidateScript(s); err != nil {
		return Script{}, err
	}

	return s, nil
}

// EncodeScript writes s as YAML with each turn in the compact [player, roll] form
func EncodeScript(w io.Writer, s Script) error {
	turns := &yaml.Node{Kind: yaml.SequenceNode}
	for _, t := range s.Turns {
		turns.Content = append(turns.Content, &yaml.Node{
			Kind:  yaml.SequenceNode,
			Style: yaml.FlowStyle,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Value: string(t.Player)},
				{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(t.Roll)},
			},
		})
	}

	players := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, q := range s.Players {
		players.Content = append(players.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: string(q)})
	}

	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "players"}, players,
			{Kind: yaml.ScalarNode, Value: "turns"}, turns,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
