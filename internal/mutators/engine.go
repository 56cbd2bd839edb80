package mutators

import (
	"errors"
	"log"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

// EngineConfig holds the collaborators of an Engine. Every field is optional;
// a nil collaborator behaves permissively (no host restriction, no
// difficulty restriction, no dice bookkeeping, no notifications).
type EngineConfig struct {
	Authority  HostAuthority
	Difficulty DifficultySource
	Guard      ActivationGuard
	Ledger     DiceLedger
	Notifier   StateNotifier
	Observer   ListObserver
	Messenger  Messenger
	Localizer  Localizer
	Reporter   ErrorReporter
}

// Engine owns the registered mutators of one game session, their ordering
// constraints and compatibility data, and drives every state change.
//
// An Engine is not safe for concurrent use; callers serialize access.
type Engine struct {
	registered []*Mutator // registration order
	order      []*Mutator // resolved order
	byName     map[string]*Mutator
	graph      *constraintGraph
	sorted     bool

	authority  HostAuthority
	difficulty DifficultySource
	guard      ActivationGuard
	ledger     DiceLedger
	notifier   StateNotifier
	observer   ListObserver
	messenger  Messenger
	localizer  Localizer
	reporter   ErrorReporter
}

// NewEngine creates an empty engine
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		cfg = &EngineConfig{}
	}

	e := &Engine{
		byName:     make(map[string]*Mutator),
		graph:      newConstraintGraph(),
		sorted:     true,
		authority:  cfg.Authority,
		difficulty: cfg.Difficulty,
		guard:      cfg.Guard,
		ledger:     cfg.Ledger,
		notifier:   cfg.Notifier,
		observer:   cfg.Observer,
		messenger:  cfg.Messenger,
		localizer:  cfg.Localizer,
		reporter:   cfg.Reporter,
	}

	if e.ledger == nil {
		e.ledger = noopLedger{}
	}
	if e.localizer == nil {
		e.localizer = fallbackLocalizer{}
	}
	if e.reporter == nil {
		e.reporter = logReporter{}
	}

	return e
}

// Register adds a mutator. A duplicate name fails without changing anything.
//
// Configuration problems that are resolved deterministically (conflicting
// compatibility declarations, cyclic ordering constraints) do not prevent
// registration: the mutator is returned together with a non-nil error
// describing them.
func (e *Engine) Register(name string, cfg Config) (*Mutator, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		err := dnderr.InvalidArgument("mutator name is required")
		e.reporter.ReportError(err)
		return nil, err
	}

	if _, exists := e.byName[name]; exists {
		err := dnderr.AlreadyExistsf("mutator %q is already registered", name).
			WithMeta("mutator", name)
		e.reporter.ReportError(err)
		return nil, err
	}

	resolved, err := cfg.resolve(name)
	if err != nil {
		e.reporter.ReportError(err)
		return nil, err
	}

	m := newMutator(name, resolved)
	e.registered = append(e.registered, m)
	e.order = append(e.order, m)
	e.byName[name] = m
	e.sorted = false

	var problems []error
	problems = append(problems, e.addSequenceConstraints(m)...)
	problems = append(problems, e.rebuildCompatibility(m)...)
	for _, p := range problems {
		e.reporter.ReportError(p)
	}

	log.Printf("MutatorRegistry: Registered mutator %s (%d total)", name, len(e.registered))

	if e.observer != nil {
		e.observer.ListChanged()
	}

	return m, errors.Join(problems...)
}

// Mutator looks up a registered mutator by name
func (e *Engine) Mutator(name string) (*Mutator, bool) {
	m, ok := e.byName[name]
	return m, ok
}

// Len returns the number of registered mutators
func (e *Engine) Len() int {
	return len(e.registered)
}

// Registered returns the mutators in registration order
func (e *Engine) Registered() []*Mutator {
	return append([]*Mutator(nil), e.registered...)
}

// Mutators returns the mutators in resolved order, resolving it first if a
// registration made it stale
func (e *Engine) Mutators() []*Mutator {
	e.ensureSorted()
	return append([]*Mutator(nil), e.order...)
}

// IsEnabled reports whether the named mutator is registered and enabled
func (e *Engine) IsEnabled(name string) bool {
	m, ok := e.byName[name]
	return ok && m.enabled
}

// EnabledNames returns the enabled mutators' names in resolved order
func (e *Engine) EnabledNames() []string {
	e.ensureSorted()
	var names []string
	for _, m := range e.order {
		if m.enabled {
			names = append(names, m.name)
		}
	}
	return names
}

// EnabledDice sums the dice weight of every enabled mutator
func (e *Engine) EnabledDice() int {
	total := 0
	for _, m := range e.registered {
		if m.enabled {
			total += m.config.Dice
		}
	}
	return total
}

// indexOf returns the mutator's position in the resolved order
func (e *Engine) indexOf(m *Mutator) int {
	for i, other := range e.order {
		if other == m {
			return i
		}
	}
	return -1
}
