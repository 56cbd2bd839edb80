package mutators

import (
	"log"

	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

type framePhase int

const (
	phaseStart framePhase = iota
	phaseCascade
	phaseApply
	phaseReenable
)

// frame is one pending state change on the cascade stack
type frame struct {
	mutator *Mutator
	desired bool
	initial bool
	phase   framePhase

	// followers are the enabled mutators after this one that must be
	// enabled after it, snapshotted from the highest index down
	followers []*Mutator
	next      int

	// disabled holds the followers switched off by this frame, in the
	// order they were switched off
	disabled []*Mutator
}

// SetState switches the named mutator on or off.
//
// Enabled mutators positioned after it that must be enabled after it are
// switched off first and switched back on afterwards, most recently disabled
// first, so that enabled mutators always come on in resolved order. Every
// enable goes through the availability gate; a follower that no longer
// passes it stays off. The activation guard only applies to the requested
// enable.
func (e *Engine) SetState(name string, enabled bool) error {
	m, ok := e.byName[name]
	if !ok {
		err := dnderr.InvalidStatef("cannot change state of unregistered mutator %q", name).
			WithMeta("mutator", name)
		e.reporter.ReportError(err)
		return err
	}
	return e.setState(m, enabled)
}

func (e *Engine) setState(m *Mutator, enabled bool) error {
	if m.enabled == enabled {
		return nil
	}

	if enabled {
		if e.guard != nil && !e.guard.ActivationAllowed() {
			return dnderr.Rejectedf("mutators cannot be enabled right now").
				WithMeta("mutator", m.name)
		}
		if !e.canBeEnabled(m) {
			return dnderr.Rejectedf("mutator %q cannot be enabled", m.name).
				WithMeta("mutator", m.name)
		}
	}

	return e.runCascade(m, enabled)
}

// runCascade processes the transition on an explicit stack. Every nested
// frame belongs to a mutator positioned strictly after its parent, so depth
// can never legitimately exceed the number of mutators.
func (e *Engine) runCascade(m *Mutator, enabled bool) error {
	e.ensureSorted()

	maxDepth := len(e.order)
	stack := []*frame{{mutator: m, desired: enabled, initial: true}}

	for len(stack) > 0 {
		if len(stack) > maxDepth {
			err := dnderr.CyclicConstraintf("cascade for mutator %q exceeded depth %d", m.name, maxDepth).
				WithMeta("mutator", m.name)
			e.reporter.ReportError(err)
			return err
		}

		top := stack[len(stack)-1]
		switch top.phase {
		case phaseStart:
			if top.mutator.enabled == top.desired {
				stack = stack[:len(stack)-1]
				continue
			}
			if top.desired && !top.initial && !e.canBeEnabled(top.mutator) {
				log.Printf("MutatorState: Left disabled name=%s index=%d", top.mutator.name, e.indexOf(top.mutator))
				stack = stack[:len(stack)-1]
				continue
			}
			top.followers = e.enabledFollowers(top.mutator)
			top.phase = phaseCascade

		case phaseCascade:
			if top.next >= len(top.followers) {
				top.phase = phaseApply
				continue
			}
			follower := top.followers[top.next]
			top.next++
			if !follower.enabled {
				continue
			}
			top.disabled = append(top.disabled, follower)
			stack = append(stack, &frame{mutator: follower, desired: false})

		case phaseApply:
			e.apply(top.mutator, top.desired)
			top.phase = phaseReenable

		case phaseReenable:
			if len(top.disabled) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			last := top.disabled[len(top.disabled)-1]
			top.disabled = top.disabled[:len(top.disabled)-1]
			stack = append(stack, &frame{mutator: last, desired: true})
		}
	}

	return nil
}

// enabledFollowers snapshots, from the end of the resolved order down to just
// after m, the enabled mutators that must be enabled after m
func (e *Engine) enabledFollowers(m *Mutator) []*Mutator {
	i := e.indexOf(m)
	mustFollow := e.graph.afterSet(m.name)
	if len(mustFollow) == 0 {
		return nil
	}

	var out []*Mutator
	for j := len(e.order) - 1; j > i; j-- {
		other := e.order[j]
		if !other.enabled {
			continue
		}
		if _, ok := mustFollow[other.name]; ok {
			out = append(out, other)
		}
	}
	return out
}

// apply flips the mutator and runs every enable/disable side effect
func (e *Engine) apply(m *Mutator, enabled bool) {
	m.enabled = enabled
	index := e.indexOf(m)

	var a Activatable = m
	if enabled {
		e.ledger.AddDice(m.config.Dice)
		a.OnEnabled()
		log.Printf("MutatorState: Enabled name=%s index=%d", m.name, index)
	} else {
		e.ledger.RemoveDice(m.config.Dice)
		a.OnDisabled()
		log.Printf("MutatorState: Disabled name=%s index=%d", m.name, index)
	}

	if e.notifier != nil {
		e.notifier.MutatorsChanged(m, enabled, index)
	}
}

// Restore replays enables for the given names in resolved order, the way a
// persisted enabled set is brought back after a reload. Unknown names and
// rejected enables are reported and skipped.
func (e *Engine) Restore(names []string) []error {
	e.ensureSorted()

	wanted := make(map[string]bool, len(names))
	var errs []error
	for _, n := range names {
		if _, ok := e.byName[n]; !ok {
			err := dnderr.InvalidStatef("cannot restore unregistered mutator %q", n).
				WithMeta("mutator", n)
			e.reporter.ReportError(err)
			errs = append(errs, err)
			continue
		}
		wanted[n] = true
	}

	for _, m := range append([]*Mutator(nil), e.order...) {
		if !wanted[m.name] {
			continue
		}
		if err := e.setState(m, true); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
