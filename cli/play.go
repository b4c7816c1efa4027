package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/minaorangina/ludo/game"
	"github.com/minaorangina/ludo/protocol"
	"github.com/spf13/cobra"
)

// NewPlayCommand creates the play command
func NewPlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <script>",
		Short: "Play a turn script and print the final positions",
		Long: `Play every turn of a YAML or JSON script and print each player's two spaces.
Pass - to read the script from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := readScript(cmd, args[0])
			if err != nil {
				return err
			}
			return playScript(cmd.OutOrStdout(), script)
		},
	}

	return cmd
}

func readScript(cmd *cobra.Command, path string) (protocol.Script, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return protocol.Script{}, fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		r = f
	}

	script, err := protocol.DecodeScript(r)
	if err != nil {
		return protocol.Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return script, nil
}

func playScript(out io.Writer, script protocol.Script) error {
	opts := game.Opts{Players: script.Players}
	if verbose {
		opts.Logger = log.New(out, "", 0)
	}

	g, err := game.New(opts)
	if err != nil {
		return err
	}

	if _, err := g.Play(script.Turns); err != nil {
		return fmt.Errorf("failed to play script: %w", err)
	}

	if verbose {
		fmt.Fprintln(out)
	}
	for _, p := range g.Players() {
		fmt.Fprintf(out, "%s: %s\n", p.Quadrant(), strings.Join(p.SpaceNames(), " "))
	}

	if done := g.Completed(); len(done) > 0 {
		names := []string{}
		for _, q := range done {
			names = append(names, q.String())
		}
		fmt.Fprintf(out, "completed: %s\n", strings.Join(names, ", "))
	}

	return nil
}
