package mutators

import (
	"log"
	"sort"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

// ensureSorted resolves the order if a registration made it stale
func (e *Engine) ensureSorted() {
	if e.sorted {
		return
	}
	if err := e.sortMutators(); err != nil {
		e.reporter.ReportError(err)
	}
}

// Resolve forces the resolved order to be recomputed and returns the
// CyclicConstraint error, if any
func (e *Engine) Resolve() error {
	return e.sortMutators()
}

// sortMutators reorders e.order so that every mutator precedes the ones that
// must be enabled after it.
//
// The scan walks forward; whenever an earlier mutator must come after the
// current one it is moved to just behind it. Already consistent prefixes keep
// their relative order. The number of outer steps is capped at n(n+1)/2 so a
// cycle cannot hang the scan; the order is then left as is and still counts
// as resolved until the next registration.
func (e *Engine) sortMutators() error {
	defer func() { e.sorted = true }()

	n := len(e.order)
	if n <= 1 {
		return nil
	}

	cycle := e.cycleMembers()
	maxIterations := n * (n + 1) / 2
	iterations := 0
	aborted := false

	for i := 1; i < len(e.order); i++ {
		if iterations > maxIterations {
			aborted = true
			break
		}
		current := e.order[i]
		mustFollow := e.graph.afterSet(current.name)
		if len(mustFollow) > 0 {
			for j := i - 1; j >= 0; j-- {
				other := e.order[j]
				if _, ok := mustFollow[other.name]; !ok {
					continue
				}
				e.order = moveAfter(e.order, j, i)
				i--
			}
		}
		iterations++
	}

	if len(cycle) > 0 {
		return dnderr.CyclicConstraintf("mutators %s form an ordering cycle", strings.Join(cycle, ", ")).
			WithMeta("mutators", cycle)
	}
	if aborted {
		return dnderr.CyclicConstraintf("mutator sorting aborted after %d iterations", maxIterations).
			WithMeta("iterations", maxIterations)
	}

	log.Printf("MutatorSequencer: Resolved order of %d mutators", n)
	return nil
}

// moveAfter removes the element at from and reinserts it at index to, which
// after the removal is directly behind the element that used to sit at to
func moveAfter(order []*Mutator, from, to int) []*Mutator {
	moved := order[from]
	copy(order[from:], order[from+1:])
	copy(order[to+1:], order[to:len(order)-1])
	order[to] = moved
	return order
}

// cycleMembers returns the sorted names of registered mutators that sit on
// (or between) ordering cycles, or nil when the constraints among registered
// mutators are acyclic
func (e *Engine) cycleMembers() []string {
	forward := make(map[string][]string, len(e.order))
	backward := make(map[string][]string, len(e.order))
	for _, m := range e.order {
		for _, to := range e.graph.after[m.name] {
			if _, ok := e.byName[to]; !ok {
				continue
			}
			forward[m.name] = append(forward[m.name], to)
			backward[to] = append(backward[to], m.name)
		}
	}

	remaining := make(map[string]bool, len(e.order))
	for _, m := range e.order {
		remaining[m.name] = true
	}

	// Peel sources, then sinks; whatever survives both passes is cyclic
	peel(remaining, backward, forward)
	peel(remaining, forward, backward)

	var out []string
	for name := range remaining {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// peel repeatedly drops nodes of remaining that have no incoming edges from
// other remaining nodes (per incoming), walking outgoing to find the next
// candidates. This is Kahn's algorithm without the output order.
func peel(remaining map[string]bool, incoming, outgoing map[string][]string) {
	degree := make(map[string]int, len(remaining))
	for name := range remaining {
		for _, from := range incoming[name] {
			if remaining[from] {
				degree[name]++
			}
		}
	}

	var queue []string
	for name := range remaining {
		if degree[name] == 0 {
			queue = append(queue, name)
		}
	}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		delete(remaining, name)
		for _, next := range outgoing[name] {
			if !remaining[next] {
				continue
			}
			degree[next]--
			if degree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
}
