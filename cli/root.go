// Package cli is the ludo command line: it plays turn scripts and generates
// them from seeded dice.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ludo",
		Short: "Ludo - resolve scripted turns of Ludo",
		Long: `Ludo plays a script of (player, roll) turns and prints where every token ends up.

Examples:
  ludo roll --players A,B --turns 40 --seed 7 > game.yaml
  ludo play game.yaml
  ludo roll --players A,C | ludo play --verbose -`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Print every turn as it is played")

	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewRollCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
