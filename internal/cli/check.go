package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

// Problem is one thing wrong with the definitions
type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CheckResult is the outcome of the check command
type CheckResult struct {
	Valid    bool      `json:"valid"`
	Mutators int       `json:"mutators"`
	Problems []Problem `json:"problems"`
}

// NewCheckCommand creates the check command
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check definitions for parse errors, rejected registrations and ordering cycles",
		Long: `Load the definitions directory the same way the bot does and report every
problem found. Exits non-zero when there is at least one problem, so it can
gate a deploy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd)
		},
	}
}

func runCheck(opts *RootOptions, cmd *cobra.Command) error {
	c, err := loadCatalogue(opts.Dir)
	if err != nil {
		return err
	}

	result := CheckResult{
		Valid:    len(c.problems) == 0,
		Mutators: c.count,
		Problems: make([]Problem, 0, len(c.problems)),
	}
	for _, problem := range c.problems {
		result.Problems = append(result.Problems, Problem{
			Code:    string(dnderr.GetCode(problem)),
			Message: problem.Error(),
		})
	}

	p := &printer{format: opts.Format, out: cmd.OutOrStdout()}
	if p.json() {
		if err := p.encode(result); err != nil {
			return err
		}
	} else if result.Valid {
		p.printf("✓ %d mutators loaded, order resolved\n", result.Mutators)
	} else {
		p.printf("✗ %d problems in %s:\n", len(result.Problems), opts.Dir)
		for _, problem := range result.Problems {
			p.printf("  - [%s] %s\n", problem.Code, problem.Message)
		}
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%d problems found", len(result.Problems)))
	}
	return nil
}
