package mutators

import (
	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

// constraintGraph maps a mutator name to the names that must be enabled
// after it. Edges are only ever added.
type constraintGraph struct {
	after map[string][]string
}

func newConstraintGraph() *constraintGraph {
	return &constraintGraph{after: make(map[string][]string)}
}

// has reports whether "to" must be enabled after "from"
func (g *constraintGraph) has(from, to string) bool {
	for _, n := range g.after[from] {
		if n == to {
			return true
		}
	}
	return false
}

// afterSet returns the names that must be enabled after name
func (g *constraintGraph) afterSet(name string) map[string]struct{} {
	return nameSet(g.after[name])
}

// addAfterConstraints records that every name in afterNames must be enabled
// after name. An edge whose reverse is already stored is skipped and
// reported; the remaining edges are still applied.
func (g *constraintGraph) addAfterConstraints(name string, afterNames []string) []error {
	var errs []error
	for _, other := range afterNames {
		if other == name {
			errs = append(errs, dnderr.CyclicConstraintf("mutator %q cannot be enabled after itself", name).
				WithMeta("mutator", name))
			continue
		}
		if g.has(other, name) {
			errs = append(errs, dnderr.CyclicConstraintf("mutators %q and %q are both set to be enabled after each other", name, other).
				WithMeta("mutator", name).
				WithMeta("other", other))
			continue
		}
		if g.has(name, other) {
			continue
		}
		g.after[name] = append(g.after[name], other)
	}
	return errs
}

// addSequenceConstraints routes both declaration forms of a new mutator
// through the graph so only "after" edges are stored
func (e *Engine) addSequenceConstraints(m *Mutator) []error {
	var errs []error
	if len(m.config.EnableBeforeThese) > 0 {
		errs = append(errs, e.graph.addAfterConstraints(m.name, m.config.EnableBeforeThese)...)
	}
	for _, other := range m.config.EnableAfterThese {
		errs = append(errs, e.graph.addAfterConstraints(other, []string{m.name})...)
	}
	return errs
}

// MustFollow reports whether later must be enabled after earlier
func (e *Engine) MustFollow(earlier, later string) bool {
	return e.graph.has(earlier, later)
}

// AfterSet returns the names that must be enabled after the named mutator,
// in declaration order
func (e *Engine) AfterSet(name string) []string {
	return append([]string(nil), e.graph.after[name]...)
}
