// Package cli implements mutatorctl, which checks mutator definition files
// the same way the bot loads them
package cli

import (
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands
type RootOptions struct {
	Dir     string
	Format  string // "text" | "json"
	Verbose bool
}

// ValidFormats defines the allowed output formats
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for mutatorctl
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "mutatorctl",
		Short: "Inspect mutator definitions",
		Long:  "Load a directory of mutator definitions and report their resolved order, conflicts and problems.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			// The engine logs every resolve; keep that out of the report
			if !opts.Verbose {
				log.SetOutput(io.Discard)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.Dir, "dir", "d", "./mutators", "mutator definitions directory")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewOrderCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewCompatCommand(opts))

	return cmd
}
