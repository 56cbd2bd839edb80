package mutators

import (
	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

// pairCompatible derives whether a and b may be enabled together from their
// declarations. Highest precedence first: an explicit incompatibility on
// either side, an explicit compatibility on either side, a compatible_with_all
// stance on either side, an incompatible_with_all stance on either side,
// otherwise compatible.
func pairCompatible(a, b *Mutator) bool {
	if _, ok := a.incompatibleWith[b.name]; ok {
		return false
	}
	if _, ok := b.incompatibleWith[a.name]; ok {
		return false
	}
	if _, ok := a.compatibleWith[b.name]; ok {
		return true
	}
	if _, ok := b.compatibleWith[a.name]; ok {
		return true
	}
	if a.config.CompatibleWithAll || b.config.CompatibleWithAll {
		return true
	}
	if a.config.IncompatibleWithAll || b.config.IncompatibleWithAll {
		return false
	}
	return true
}

// conflictingDeclaration reports whether the pair is declared both compatible
// and incompatible, by either side
func conflictingDeclaration(a, b *Mutator) bool {
	_, aCompat := a.compatibleWith[b.name]
	_, aIncompat := a.incompatibleWith[b.name]
	_, bCompat := b.compatibleWith[a.name]
	_, bIncompat := b.incompatibleWith[a.name]
	return (aCompat || bCompat) && (aIncompat || bIncompat)
}

// rebuildCompatibility folds a newly registered mutator into every cached
// exception set. Existing mutators are updated in place; only pairs that
// involve the new mutator are evaluated.
func (e *Engine) rebuildCompatibility(m *Mutator) []error {
	var errs []error

	m.mostlyCompatible = !m.config.IncompatibleWithAll
	m.exceptions = make(map[*Mutator]struct{})

	for _, other := range e.registered {
		if other == m {
			continue
		}
		if conflictingDeclaration(m, other) {
			errs = append(errs, dnderr.Conflictf("mutators %q and %q are declared both compatible and incompatible with each other", m.name, other.name).
				WithMeta("mutator", m.name).
				WithMeta("other", other.name))
		}

		compatible := pairCompatible(m, other)
		if compatible != m.mostlyCompatible {
			m.exceptions[other] = struct{}{}
		}
		if compatible != other.mostlyCompatible {
			other.exceptions[m] = struct{}{}
		}
	}

	return errs
}

// IsCompatible reports whether the two named mutators may be enabled
// together. Unknown names are never compatible.
func (e *Engine) IsCompatible(a, b string) bool {
	ma, ok := e.byName[a]
	if !ok {
		return false
	}
	mb, ok := e.byName[b]
	if !ok {
		return false
	}
	return ma.compatibleCached(mb)
}

// IncompatibleMutators lists, in resolved order, the mutators that cannot be
// enabled together with the named one, optionally only the enabled ones
func (e *Engine) IncompatibleMutators(name string, enabledOnly bool) []*Mutator {
	m, ok := e.byName[name]
	if !ok {
		return nil
	}
	e.ensureSorted()
	return e.incompatibleWith(m, enabledOnly)
}

func (e *Engine) incompatibleWith(m *Mutator, enabledOnly bool) []*Mutator {
	var out []*Mutator
	for _, other := range e.order {
		if other == m {
			continue
		}
		if enabledOnly && !other.enabled {
			continue
		}
		if !m.compatibleCached(other) {
			out = append(out, other)
		}
	}
	return out
}
