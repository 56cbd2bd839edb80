package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// CompatResult answers a compatibility question
type CompatResult struct {
	Mutator      string   `json:"mutator"`
	Other        string   `json:"other,omitempty"`
	Compatible   bool     `json:"compatible"`
	Incompatible []string `json:"incompatible_with,omitempty"`
}

// NewCompatCommand creates the compat command
func NewCompatCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compat <mutator> [other]",
		Short: "Show whether two mutators can run together",
		Long: `With two mutators, report whether they can be enabled at the same time.
With one, list every mutator it conflicts with.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompat(rootOpts, args, cmd)
		},
	}
}

func runCompat(opts *RootOptions, args []string, cmd *cobra.Command) error {
	c, err := loadCatalogue(opts.Dir)
	if err != nil {
		return err
	}

	m, err := c.mutator(args[0])
	if err != nil {
		return err
	}

	result := CompatResult{Mutator: m.Name()}
	if len(args) == 2 {
		other, err := c.mutator(args[1])
		if err != nil {
			return err
		}
		result.Other = other.Name()
		result.Compatible = c.engine.IsCompatible(m.Name(), other.Name())
	} else {
		result.Incompatible = names(c.engine.IncompatibleMutators(m.Name(), false))
		result.Compatible = len(result.Incompatible) == 0
	}

	p := &printer{format: opts.Format, out: cmd.OutOrStdout()}
	if p.json() {
		return p.encode(result)
	}

	switch {
	case result.Other != "" && result.Compatible:
		p.printf("%s and %s are compatible\n", result.Mutator, result.Other)
	case result.Other != "":
		p.printf("%s and %s are incompatible\n", result.Mutator, result.Other)
	case result.Compatible:
		p.printf("%s is compatible with every other mutator\n", result.Mutator)
	default:
		p.printf("%s conflicts with: %s\n", result.Mutator, strings.Join(result.Incompatible, ", "))
	}
	return nil
}
