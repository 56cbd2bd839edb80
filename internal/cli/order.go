package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// OrderEntry is one mutator in resolved order
type OrderEntry struct {
	Position     int      `json:"position"`
	Name         string   `json:"name"`
	Title        string   `json:"title,omitempty"`
	Dice         int      `json:"dice,omitempty"`
	Difficulties []string `json:"difficulties,omitempty"`
	Before       []string `json:"before,omitempty"`
	Incompatible []string `json:"incompatible_with,omitempty"`
}

// NewOrderCommand creates the order command
func NewOrderCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Print the mutators in the order they are enabled",
		Long: `Print every mutator in resolved order with its reward dice, difficulty
restrictions, the mutators it must be enabled before and the ones it
conflicts with.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(rootOpts, cmd)
		},
	}
}

func runOrder(opts *RootOptions, cmd *cobra.Command) error {
	c, err := loadCatalogue(opts.Dir)
	if err != nil {
		return err
	}

	var entries []OrderEntry
	for i, m := range c.engine.Mutators() {
		cfg := m.Config()
		entry := OrderEntry{
			Position:     i + 1,
			Name:         m.Name(),
			Title:        m.Title(false),
			Dice:         m.Dice(),
			Before:       c.engine.AfterSet(m.Name()),
			Incompatible: names(c.engine.IncompatibleMutators(m.Name(), false)),
		}
		for _, d := range cfg.DifficultyLevels {
			entry.Difficulties = append(entry.Difficulties, d.String())
		}
		entries = append(entries, entry)
	}

	if len(c.problems) > 0 {
		(&printer{out: cmd.ErrOrStderr()}).printf("warning: %d problems found, run check for details\n", len(c.problems))
	}

	p := &printer{format: opts.Format, out: cmd.OutOrStdout()}
	if p.json() {
		if entries == nil {
			entries = []OrderEntry{}
		}
		return p.encode(entries)
	}

	if len(entries) == 0 {
		p.printf("No mutators defined in %s\n", opts.Dir)
		return nil
	}

	for _, e := range entries {
		if e.Title != "" {
			p.printf("%d. %s %q\n", e.Position, e.Name, e.Title)
		} else {
			p.printf("%d. %s\n", e.Position, e.Name)
		}
		if e.Dice > 0 {
			p.printf("   dice: %d\n", e.Dice)
		}
		if len(e.Difficulties) > 0 {
			p.printf("   difficulties: %s\n", strings.Join(e.Difficulties, ", "))
		}
		if len(e.Before) > 0 {
			p.printf("   before: %s\n", strings.Join(e.Before, ", "))
		}
		if len(e.Incompatible) > 0 {
			p.printf("   incompatible with: %s\n", strings.Join(e.Incompatible, ", "))
		}
	}
	return nil
}
