package cli

import (
	"fmt"
	"time"

	"github.com/minaorangina/ludo/board"
	"github.com/minaorangina/ludo/dice"
	"github.com/minaorangina/ludo/protocol"
	"github.com/spf13/cobra"
)

const defaultTurns = 40

// NewRollCommand creates the roll command
func NewRollCommand() *cobra.Command {
	var (
		players []string
		turns   int
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll dice for a new turn script",
		Long: `Roll seeded dice and print a YAML turn script, dealing turns to the players round robin.
The same seed always produces the same script. Without --seed the current time is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roster := []board.Quadrant{}
			for _, s := range players {
				q, err := board.ParseQuadrant(s)
				if err != nil {
					return fmt.Errorf("invalid --players: %w", err)
				}
				roster = append(roster, q)
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			script, err := dice.Script(roster, turns, dice.NewSeeded(seed))
			if err != nil {
				return err
			}
			if err := protocol.ValidateScript(script); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# seed %d\n", seed)
			return protocol.EncodeScript(out, script)
		},
	}

	cmd.Flags().StringSliceVar(&players, "players", []string{"A", "B"},
		"Comma separated quadrants taking part, in turn order")
	cmd.Flags().IntVar(&turns, "turns", defaultTurns, "Number of turns to roll")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the dice")

	return cmd
}
