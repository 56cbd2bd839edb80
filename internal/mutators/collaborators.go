package mutators

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mockmutators -source=collaborators.go

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
)

// HostAuthority reports whether the acting participant may change shared
// session configuration
type HostAuthority interface {
	HasHostAuthority() bool
}

// DifficultySource exposes the committed difficulty and an optional preview
// that has been selected in the lobby but not applied yet. The bool result is
// false when no difficulty can be resolved.
type DifficultySource interface {
	CurrentDifficulty() (entities.Difficulty, bool)
	PreviewDifficulty() (entities.Difficulty, bool)
}

// ActivationGuard reports whether the session is in a phase that allows
// mutators to be switched on
type ActivationGuard interface {
	ActivationAllowed() bool
}

// DiceLedger tracks the bonus reward dice of enabled mutators
type DiceLedger interface {
	AddDice(n int)
	RemoveDice(n int)
}

// StateNotifier is told about every applied transition
type StateNotifier interface {
	MutatorsChanged(m *Mutator, enabled bool, index int)
}

// ListObserver is told when the set of registered mutators changes
type ListObserver interface {
	ListChanged()
}

// Messenger delivers preformatted text either to the local participant only
// or to everyone in the session
type Messenger interface {
	Echo(message string) error
	Broadcast(message string) error
}

// Localizer renders a message key with arguments
type Localizer interface {
	Localize(key string, args ...any) string
}

// ErrorReporter receives every locally recovered configuration or state error
type ErrorReporter interface {
	ReportError(err error)
}

// ErrorReporterFunc adapts a function to ErrorReporter
type ErrorReporterFunc func(err error)

func (f ErrorReporterFunc) ReportError(err error) { f(err) }

type logReporter struct{}

func (logReporter) ReportError(err error) {
	log.Printf("MutatorRegistry: %v", err)
}

type noopLedger struct{}

func (noopLedger) AddDice(int)    {}
func (noopLedger) RemoveDice(int) {}

// Message keys rendered through the Localizer
const (
	KeyDisabledLocal      = "mutators.disabled.local"
	KeyDisabledBroadcast  = "mutators.disabled.broadcast"
	KeyReasonDifficulty   = "mutators.reason.difficulty"
	KeyReasonIncompatible = "mutators.reason.incompatible"
	KeyReasonUnavailable  = "mutators.reason.unavailable"
	KeyConnectiveAnd      = "mutators.connective.and"
)

var fallbackMessages = map[string]string{
	KeyDisabledLocal:      "Mutators disabled because %s: %s",
	KeyDisabledBroadcast:  "Mutators disabled for everyone because %s: %s",
	KeyReasonDifficulty:   "they do not support the selected difficulty",
	KeyReasonIncompatible: "they conflict with other enabled mutators",
	KeyReasonUnavailable:  "they are no longer available",
	KeyConnectiveAnd:      "and",
}

// fallbackLocalizer renders built-in English text when no catalog is wired
type fallbackLocalizer struct{}

func (fallbackLocalizer) Localize(key string, args ...any) string {
	format, ok := fallbackMessages[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
