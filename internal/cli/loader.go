package cli

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/definitions"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/mutators"
)

// catalogue is a directory of definitions registered the way the bot does it
type catalogue struct {
	dir      string
	engine   *mutators.Engine
	count    int
	problems []error
}

// loadCatalogue parses dir and registers every definition with a fresh
// engine. Files that fail to parse, rejected registrations and ordering
// cycles are collected as problems rather than stopping the load.
func loadCatalogue(dir string) (*catalogue, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("mutator directory %s not found", dir), err)
	}
	if !info.IsDir() {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("%s is not a directory", dir))
	}

	c := &catalogue{
		dir: dir,
		// Every reported problem is also returned to us
		engine: mutators.NewEngine(&mutators.EngineConfig{
			Reporter: mutators.ErrorReporterFunc(func(error) {}),
		}),
	}

	defs, loadErr := definitions.LoadDir(dir)
	c.problems = append(c.problems, unjoin(loadErr)...)
	c.problems = append(c.problems, definitions.Register(c.engine, defs)...)
	if err := c.engine.Resolve(); err != nil {
		c.problems = append(c.problems, err)
	}
	c.count = c.engine.Len()

	return c, nil
}

// unjoin splits an errors.Join result back into its parts
func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func (c *catalogue) mutator(name string) (*mutators.Mutator, error) {
	m, ok := c.engine.Mutator(name)
	if !ok {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("unknown mutator %q in %s", name, c.dir))
	}
	return m, nil
}

func names(ms []*mutators.Mutator) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Name())
	}
	return out
}
