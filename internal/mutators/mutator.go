package mutators

import (
	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
)

// Activatable is the capability the engine drives when it flips a mutator
type Activatable interface {
	// Name returns the unique registered name
	Name() string

	// IsEnabled reports the current state
	IsEnabled() bool

	// OnEnabled runs after the mutator has been switched on
	OnEnabled()

	// OnDisabled runs after the mutator has been switched off
	OnDisabled()
}

// Handler receives a mutator's enable and disable callbacks
type Handler interface {
	OnEnabled(m *Mutator)
	OnDisabled(m *Mutator)
}

// HandlerFuncs adapts plain functions to Handler. Nil fields are skipped.
type HandlerFuncs struct {
	Enabled  func(m *Mutator)
	Disabled func(m *Mutator)
}

func (h HandlerFuncs) OnEnabled(m *Mutator) {
	if h.Enabled != nil {
		h.Enabled(m)
	}
}

func (h HandlerFuncs) OnDisabled(m *Mutator) {
	if h.Disabled != nil {
		h.Disabled(m)
	}
}

// Mutator is a registered optional session rule
type Mutator struct {
	name    string
	config  Config
	enabled bool
	handler Handler

	compatibleWith   map[string]struct{}
	incompatibleWith map[string]struct{}
	difficulties     map[entities.Difficulty]struct{}

	// mostlyCompatible is the default stance towards other mutators and
	// exceptions holds every mutator for which the stance does not hold
	mostlyCompatible bool
	exceptions       map[*Mutator]struct{}
}

var _ Activatable = (*Mutator)(nil)

func newMutator(name string, cfg Config) *Mutator {
	m := &Mutator{
		name:             name,
		config:           cfg,
		compatibleWith:   nameSet(cfg.CompatibleWith),
		incompatibleWith: nameSet(cfg.IncompatibleWith),
		difficulties:     make(map[entities.Difficulty]struct{}, len(cfg.DifficultyLevels)),
		mostlyCompatible: !cfg.IncompatibleWithAll,
		exceptions:       make(map[*Mutator]struct{}),
	}
	for _, d := range cfg.DifficultyLevels {
		m.difficulties[d] = struct{}{}
	}
	return m
}

func (m *Mutator) Name() string    { return m.name }
func (m *Mutator) IsEnabled() bool { return m.enabled }

// Config returns a copy of the resolved configuration
func (m *Mutator) Config() Config {
	cfg := m.config
	cfg.CompatibleWith = append([]string(nil), m.config.CompatibleWith...)
	cfg.IncompatibleWith = append([]string(nil), m.config.IncompatibleWith...)
	cfg.EnableBeforeThese = append([]string(nil), m.config.EnableBeforeThese...)
	cfg.EnableAfterThese = append([]string(nil), m.config.EnableAfterThese...)
	cfg.DifficultyLevels = append([]entities.Difficulty(nil), m.config.DifficultyLevels...)
	return cfg
}

// Title returns the display title, or the short title when short is set
func (m *Mutator) Title(short bool) string {
	if short {
		return m.config.ShortTitle
	}
	return m.config.Title
}

// Dice returns the bonus reward dice weight
func (m *Mutator) Dice() int { return m.config.Dice }

// SetHandler attaches the callbacks invoked on enable and disable
func (m *Mutator) SetHandler(h Handler) {
	m.handler = h
}

// OnEnabled forwards to the attached handler
func (m *Mutator) OnEnabled() {
	if m.handler != nil {
		m.handler.OnEnabled(m)
	}
}

// OnDisabled forwards to the attached handler
func (m *Mutator) OnDisabled() {
	if m.handler != nil {
		m.handler.OnDisabled(m)
	}
}

// SupportsDifficulty reports whether the mutator may run at the difficulty.
// An empty difficulty set allows every difficulty.
func (m *Mutator) SupportsDifficulty(d entities.Difficulty) bool {
	if len(m.difficulties) == 0 {
		return true
	}
	_, ok := m.difficulties[d]
	return ok
}

// compatibleCached answers from the cached stance and exception set
func (m *Mutator) compatibleCached(other *Mutator) bool {
	if _, ok := m.exceptions[other]; ok {
		return !m.mostlyCompatible
	}
	return m.mostlyCompatible
}
