package mutators

import (
	"log"
	"strings"
)

// CanBeEnabled reports whether the named mutator may be switched on right
// now: no enabled mutator conflicts with it, the acting participant has host
// authority and the mutator supports the relevant difficulty
func (e *Engine) CanBeEnabled(name string) bool {
	m, ok := e.byName[name]
	if !ok {
		return false
	}
	return e.canBeEnabled(m)
}

func (e *Engine) canBeEnabled(m *Mutator) bool {
	if len(e.incompatibleWith(m, true)) > 0 {
		return false
	}
	return e.hasHostAuthority() && e.supportsCurrentDifficulty(m)
}

// hasHostAuthority is satisfied when no authority source is wired yet
func (e *Engine) hasHostAuthority() bool {
	if e.authority == nil {
		return true
	}
	return e.authority.HasHostAuthority()
}

// SupportsCurrentDifficulty checks the previewed difficulty when a lobby
// selection is pending, the committed one otherwise, and passes when neither
// can be resolved
func (e *Engine) SupportsCurrentDifficulty(name string) bool {
	m, ok := e.byName[name]
	if !ok {
		return false
	}
	return e.supportsCurrentDifficulty(m)
}

func (e *Engine) supportsCurrentDifficulty(m *Mutator) bool {
	if e.difficulty == nil {
		return true
	}
	if preview, ok := e.difficulty.PreviewDifficulty(); ok {
		return m.SupportsDifficulty(preview)
	}
	if current, ok := e.difficulty.CurrentDifficulty(); ok {
		return m.SupportsDifficulty(current)
	}
	return true
}

// DisableImpossible switches off every enabled mutator that no longer passes
// the availability gate, walking the registration order backwards. When
// notify is set and anything was switched off, one message naming all of
// them and the localized reason goes to everyone or to the local participant
// only. The disabled mutators are returned.
func (e *Engine) DisableImpossible(notify, everyone bool, reasonKey string) []*Mutator {
	var disabled []*Mutator
	for i := len(e.registered) - 1; i >= 0; i-- {
		m := e.registered[i]
		if !m.enabled || e.canBeEnabled(m) {
			continue
		}
		wasEnabled := e.enabledMutators()
		if err := e.setState(m, false); err != nil {
			continue
		}
		disabled = append(disabled, m)

		// followers the cascade could not switch back on
		for _, other := range wasEnabled {
			if other != m && !other.enabled {
				disabled = append(disabled, other)
			}
		}
	}

	if len(disabled) == 0 {
		return nil
	}

	names := make([]string, 0, len(disabled))
	for _, m := range disabled {
		names = append(names, m.name)
	}
	log.Printf("MutatorGate: Disabled %d impossible mutators: %s", len(disabled), strings.Join(names, ", "))

	if notify && e.messenger != nil {
		message := e.disabledMessage(disabled, everyone, reasonKey)
		var err error
		if everyone {
			err = e.messenger.Broadcast(message)
		} else {
			err = e.messenger.Echo(message)
		}
		if err != nil {
			log.Printf("MutatorGate: Failed to deliver disabled notice: %v", err)
		}
	}

	return disabled
}

func (e *Engine) enabledMutators() []*Mutator {
	var out []*Mutator
	for _, m := range e.registered {
		if m.enabled {
			out = append(out, m)
		}
	}
	return out
}

// disabledMessage renders "<header>" with the localized reason and the titles
// joined as "A, B and C"
func (e *Engine) disabledMessage(disabled []*Mutator, everyone bool, reasonKey string) string {
	titles := make([]string, 0, len(disabled))
	for _, m := range disabled {
		titles = append(titles, m.Title(false))
	}

	list := titles[0]
	if len(titles) > 1 {
		and := e.localizer.Localize(KeyConnectiveAnd)
		list = strings.Join(titles[:len(titles)-1], ", ") + " " + and + " " + titles[len(titles)-1]
	}

	if reasonKey == "" {
		reasonKey = KeyReasonUnavailable
	}
	reason := e.localizer.Localize(reasonKey)

	header := KeyDisabledLocal
	if everyone {
		header = KeyDisabledBroadcast
	}
	return e.localizer.Localize(header, reason, list)
}
