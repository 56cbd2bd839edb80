package mutator

//go:generate mockgen -destination=mock/mock_service.go -package=mockmutator -source=service.go

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/definitions"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/dice"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/events"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/metrics"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/mutators"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/repositories/gamesessions"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/repositories/mutatorsets"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/rewards"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/uuid"
)

// Service manages the mutators of every game session
type Service interface {
	// List returns the session's mutators in resolved order as seen by the actor
	List(ctx context.Context, sessionID, actorID string) ([]*Entry, error)

	// Toggle switches a mutator on or off on behalf of the session DM
	Toggle(ctx context.Context, input *ToggleInput) (*ToggleResult, error)

	// PreviewDifficulty records a lobby difficulty and switches off the
	// mutators that do not support it
	PreviewDifficulty(ctx context.Context, sessionID, actorID string, difficulty entities.Difficulty) (*DifficultyResult, error)

	// SetDifficulty commits a difficulty and switches off the mutators that
	// do not support it
	SetDifficulty(ctx context.Context, sessionID, actorID string, difficulty entities.Difficulty) (*DifficultyResult, error)

	// Sweep switches off the session's mutators that are no longer available
	Sweep(ctx context.Context, sessionID string) ([]string, error)

	// SweepAll sweeps every session with a loaded engine
	SweepAll(ctx context.Context) error

	// RegisterDefinitions adds definitions to the catalogue and to every
	// loaded engine
	RegisterDefinitions(defs []definitions.Definition) []error

	// RewardDice returns the bonus reward dice of the enabled mutators
	RewardDice(ctx context.Context, sessionID string) (int, error)

	// RollRewards rolls the session's bonus reward dice
	RollRewards(ctx context.Context, sessionID string) (*dice.RollResult, error)

	// Titles decorates base with the enabled mutators' titles
	Titles(ctx context.Context, sessionID, base string, short bool) (string, error)

	// Forget drops the session's engine and its persisted set
	Forget(ctx context.Context, sessionID string) error
}

// Messenger delivers mutator notices to Discord
type Messenger interface {
	// SendDirect sends a private message to a user
	SendDirect(userID, message string) error

	// SendChannel posts a message to a channel
	SendChannel(channelID, message string) error
}

// Entry describes one mutator of a session
type Entry struct {
	Name      string
	Title     string
	Enabled   bool
	Available bool
	Dice      int
	Conflicts []string
}

// ToggleInput identifies a requested state change
type ToggleInput struct {
	SessionID string
	ActorID   string
	Name      string
	Enabled   bool
}

// ToggleResult reports the session state after a toggle
type ToggleResult struct {
	Name         string
	Enabled      bool
	Changed      bool
	EnabledNames []string
	RewardDice   int
}

// DifficultyResult reports a difficulty change
type DifficultyResult struct {
	Difficulty entities.Difficulty
	Preview    bool
	Disabled   []string
}

// sessionEngine is the engine of one session with its collaborators
type sessionEngine struct {
	mu       sync.Mutex
	engine   *mutators.Engine
	view     *sessionView
	notifier *eventNotifier
	ledger   *rewards.Ledger
}

type service struct {
	sessions  gamesessions.Repository
	sets      mutatorsets.Repository
	bus       *events.Bus
	factory   *events.Factory
	metrics   *metrics.Metrics
	messenger Messenger
	localizer mutators.Localizer
	roller    dice.Roller

	mu          sync.RWMutex
	definitions []definitions.Definition
	engines     map[string]*sessionEngine
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Sessions    gamesessions.Repository  // Required
	Sets        mutatorsets.Repository   // Required
	Bus         *events.Bus              // Optional, a private bus is used if nil
	IDs         uuid.Generator           // Optional, will use default if nil
	Metrics     *metrics.Metrics         // Optional
	Messenger   Messenger                // Optional, notices are dropped if nil
	Localizer   mutators.Localizer       // Optional, built-in English if nil
	Roller      dice.Roller              // Optional, will use default if nil
	Definitions []definitions.Definition // Optional, more can be registered later
}

// NewService creates a new mutator service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Sessions == nil {
		panic("session repository is required")
	}
	if cfg.Sets == nil {
		panic("mutator set repository is required")
	}

	svc := &service{
		sessions:  cfg.Sessions,
		sets:      cfg.Sets,
		bus:       cfg.Bus,
		metrics:   cfg.Metrics,
		messenger: cfg.Messenger,
		localizer: cfg.Localizer,
		roller:    cfg.Roller,
		engines:   make(map[string]*sessionEngine),
	}

	if svc.bus == nil {
		svc.bus = events.NewBus()
	}
	ids := cfg.IDs
	if ids == nil {
		ids = uuid.NewPrefixed("evt", uuid.NewGoogleUUIDGenerator())
	}
	svc.factory = events.NewFactory(ids)
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.metrics != nil {
		svc.bus.Subscribe(metricsListener(svc.metrics),
			events.EventTypeMutatorEnabled,
			events.EventTypeMutatorDisabled,
			events.EventTypeMutatorForcedDisabled,
		)
	}

	if errs := svc.RegisterDefinitions(cfg.Definitions); len(errs) > 0 {
		log.Printf("MutatorService: %d definitions were rejected at startup", len(errs))
	}

	return svc
}

// List returns the session's mutators in resolved order
func (s *service) List(ctx context.Context, sessionID, actorID string) ([]*Entry, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	se, err := s.engineFor(ctx, sess)
	if err != nil {
		return nil, err
	}

	se.mu.Lock()
	defer se.mu.Unlock()
	se.view.bind(sess, actorID)

	all := se.engine.Mutators()
	entries := make([]*Entry, 0, len(all))
	for _, m := range all {
		entry := &Entry{
			Name:      m.Name(),
			Title:     m.Title(false),
			Enabled:   m.IsEnabled(),
			Available: m.IsEnabled() || se.engine.CanBeEnabled(m.Name()),
			Dice:      m.Dice(),
		}
		for _, other := range se.engine.IncompatibleMutators(m.Name(), true) {
			entry.Conflicts = append(entry.Conflicts, other.Name())
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Toggle switches a mutator on or off
func (s *service) Toggle(ctx context.Context, input *ToggleInput) (*ToggleResult, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, dnderr.InvalidArgument("mutator name is required")
	}
	if strings.TrimSpace(input.ActorID) == "" {
		return nil, dnderr.InvalidArgument("actor ID is required")
	}

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if !sess.IsDM(input.ActorID) {
		return nil, dnderr.PermissionDenied("only the DM can change mutators").
			WithMeta("user_id", input.ActorID).
			WithMeta("session_id", sess.ID)
	}

	se, err := s.engineFor(ctx, sess)
	if err != nil {
		return nil, err
	}

	se.mu.Lock()
	defer se.mu.Unlock()
	se.view.bind(sess, input.ActorID)

	m, ok := se.engine.Mutator(name)
	if !ok {
		return nil, dnderr.NotFoundf("mutator '%s' not found", name).
			WithMeta("mutator", name).
			WithMeta("session_id", sess.ID)
	}

	before := se.engine.EnabledNames()
	if err := se.engine.SetState(name, input.Enabled); err != nil {
		var conflicts []string
		for _, other := range se.engine.IncompatibleMutators(name, true) {
			conflicts = append(conflicts, other.Name())
		}
		return nil, dnderr.Wrapf(err, "failed to set mutator '%s'", name).
			WithMeta("session_id", sess.ID).
			WithMeta("mutator", name).
			WithMeta("conflicts", conflicts)
	}

	after := se.engine.EnabledNames()
	changed := !slices.Equal(before, after)
	if changed {
		s.saveEnabled(ctx, sess.ID, after)
	}

	return &ToggleResult{
		Name:         m.Name(),
		Enabled:      m.IsEnabled(),
		Changed:      changed,
		EnabledNames: after,
		RewardDice:   se.ledger.Count(),
	}, nil
}

// PreviewDifficulty records a lobby difficulty selection
func (s *service) PreviewDifficulty(ctx context.Context, sessionID, actorID string, difficulty entities.Difficulty) (*DifficultyResult, error) {
	return s.changeDifficulty(ctx, sessionID, actorID, difficulty, true)
}

// SetDifficulty commits a difficulty
func (s *service) SetDifficulty(ctx context.Context, sessionID, actorID string, difficulty entities.Difficulty) (*DifficultyResult, error) {
	return s.changeDifficulty(ctx, sessionID, actorID, difficulty, false)
}

// changeDifficulty runs the sweep against the new difficulty before the
// session is saved, telling everyone what was switched off
func (s *service) changeDifficulty(ctx context.Context, sessionID, actorID string, difficulty entities.Difficulty, preview bool) (*DifficultyResult, error) {
	if !difficulty.IsValid() {
		return nil, dnderr.InvalidArgumentf("unknown difficulty '%s'", difficulty).
			WithMeta("difficulty", string(difficulty))
	}

	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.IsDM(actorID) {
		return nil, dnderr.PermissionDenied("only the DM can change the difficulty").
			WithMeta("user_id", actorID).
			WithMeta("session_id", sess.ID)
	}

	se, err := s.engineFor(ctx, sess)
	if err != nil {
		return nil, err
	}

	se.mu.Lock()
	defer se.mu.Unlock()

	if preview {
		sess.SetPreviewDifficulty(difficulty)
	} else {
		sess.CommitDifficulty(difficulty)
	}
	se.view.bind(sess, actorID)

	disabled := s.disableImpossible(ctx, se, true, mutators.KeyReasonDifficulty)

	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, dnderr.Wrap(err, "failed to update session").
			WithMeta("session_id", sess.ID)
	}

	log.Printf("MutatorService: Difficulty of session %s set to %s (preview=%t), %d mutators disabled",
		sess.ID, difficulty, preview, len(disabled))

	return &DifficultyResult{
		Difficulty: difficulty,
		Preview:    preview,
		Disabled:   disabled,
	}, nil
}

// Sweep switches off unavailable mutators, telling the DM privately
func (s *service) Sweep(ctx context.Context, sessionID string) ([]string, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status == entities.SessionStatusEnded {
		return nil, s.Forget(ctx, sess.ID)
	}

	se, err := s.engineFor(ctx, sess)
	if err != nil {
		return nil, err
	}

	se.mu.Lock()
	defer se.mu.Unlock()

	// Sweeps act for the host
	se.view.bind(sess, sess.DMID)

	return s.disableImpossible(ctx, se, false, ""), nil
}

// SweepAll sweeps every loaded session. Sessions that disappeared are
// dropped.
func (s *service) SweepAll(ctx context.Context) error {
	start := time.Now()

	s.mu.RLock()
	ids := make([]string, 0, len(s.engines))
	for id := range s.engines {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	slices.Sort(ids)

	var errs []error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.Sweep(ctx, id); err != nil {
			if dnderr.IsNotFound(err) {
				s.evict(id)
				continue
			}
			errs = append(errs, err)
		}
	}

	if s.metrics != nil {
		s.metrics.ObserveSweep(time.Since(start))
	}

	return errors.Join(errs...)
}

// disableImpossible runs the engine sweep, publishes a forced-disable event
// per mutator and persists the remaining set. Callers hold se.mu.
func (s *service) disableImpossible(ctx context.Context, se *sessionEngine, everyone bool, reasonKey string) []string {
	disabled := se.engine.DisableImpossible(true, everyone, reasonKey)
	if len(disabled) == 0 {
		return nil
	}

	if reasonKey == "" {
		reasonKey = mutators.KeyReasonUnavailable
	}
	names := make([]string, 0, len(disabled))
	for _, m := range disabled {
		se.notifier.forcedDisable(m, reasonKey)
		names = append(names, m.Name())
	}

	s.saveEnabled(ctx, se.view.sessionID(), se.engine.EnabledNames())

	return names
}

// saveEnabled persists a set the engine has already switched to. A failure
// leaves the live session ahead of the store until the next change is saved.
func (s *service) saveEnabled(ctx context.Context, sessionID string, names []string) {
	if err := s.sets.Save(ctx, sessionID, names); err != nil {
		log.Printf("MutatorService: Failed to save enabled mutators of session %s, live state kept: %v", sessionID, err)
	}
}

// RegisterDefinitions adds new definitions to the catalogue and to every
// loaded engine. Names already in the catalogue are rejected.
func (s *service) RegisterDefinitions(defs []definitions.Definition) []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := make(map[string]bool, len(s.definitions))
	for _, def := range s.definitions {
		known[def.Name] = true
	}

	var added []definitions.Definition
	var errs []error
	for _, def := range defs {
		if known[def.Name] {
			err := dnderr.AlreadyExistsf("mutator %q is already registered", def.Name).
				WithMeta("mutator", def.Name).
				WithMeta("source", def.Source)
			s.reportError("", err)
			errs = append(errs, err)
			continue
		}
		known[def.Name] = true
		added = append(added, def)
	}
	if len(added) == 0 {
		return errs
	}
	s.definitions = append(s.definitions, added...)

	for _, se := range s.engines {
		se.mu.Lock()
		errs = append(errs, definitions.Register(se.engine, added)...)
		se.mu.Unlock()
	}

	log.Printf("MutatorService: Registered %d definitions (%d total) across %d sessions",
		len(added), len(s.definitions), len(s.engines))

	return errs
}

// RewardDice returns the number of bonus reward dice
func (s *service) RewardDice(ctx context.Context, sessionID string) (int, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	se, err := s.engineFor(ctx, sess)
	if err != nil {
		return 0, err
	}

	se.mu.Lock()
	defer se.mu.Unlock()
	return se.ledger.Count(), nil
}

// RollRewards rolls the bonus reward dice
func (s *service) RollRewards(ctx context.Context, sessionID string) (*dice.RollResult, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	se, err := s.engineFor(ctx, sess)
	if err != nil {
		return nil, err
	}

	se.mu.Lock()
	defer se.mu.Unlock()

	result, err := se.ledger.Roll(s.roller)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll reward dice").
			WithMeta("session_id", sess.ID)
	}
	return result, nil
}

// Titles decorates base with the enabled mutators' titles
func (s *service) Titles(ctx context.Context, sessionID, base string, short bool) (string, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return "", err
	}

	se, err := s.engineFor(ctx, sess)
	if err != nil {
		return "", err
	}

	se.mu.Lock()
	defer se.mu.Unlock()
	return se.engine.EnabledTitles(base, " ", short), nil
}

// Forget drops the session's engine and persisted set
func (s *service) Forget(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return dnderr.InvalidArgument("session ID is required")
	}

	s.evict(sessionID)

	if err := s.sets.Delete(ctx, sessionID); err != nil {
		return dnderr.Wrapf(err, "failed to delete mutators of session '%s'", sessionID).
			WithMeta("session_id", sessionID)
	}
	return nil
}

func (s *service) evict(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.engines[sessionID]; ok {
		delete(s.engines, sessionID)
		log.Printf("MutatorService: Dropped engine of session %s", sessionID)
	}
}

func (s *service) getSession(ctx context.Context, sessionID string) (*entities.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, dnderr.InvalidArgument("session ID is required")
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get session '%s'", sessionID).
			WithMeta("session_id", sessionID)
	}
	return sess, nil
}

// engineFor returns the session's engine, building it from the catalogue and
// restoring the persisted set on first use
func (s *service) engineFor(ctx context.Context, sess *entities.Session) (*sessionEngine, error) {
	s.mu.RLock()
	se, ok := s.engines[sess.ID]
	s.mu.RUnlock()
	if ok {
		return se, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if se, ok := s.engines[sess.ID]; ok {
		return se, nil
	}

	persisted, err := s.sets.Get(ctx, sess.ID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load enabled mutators").
			WithMeta("session_id", sess.ID)
	}

	se = s.newSessionEngine(sess)
	definitions.Register(se.engine, s.definitions)
	se.notifier.ready = true

	if len(persisted) > 0 {
		se.view.bind(sess, sess.DMID)
		se.view.restoring = true
		se.engine.Restore(persisted)
		se.view.restoring = false

		if restored := se.engine.EnabledNames(); !slices.Equal(restored, persisted) {
			if err := s.sets.Save(ctx, sess.ID, restored); err != nil {
				return nil, dnderr.Wrap(err, "failed to save enabled mutators").
					WithMeta("session_id", sess.ID)
			}
		}
	}

	s.engines[sess.ID] = se
	log.Printf("MutatorService: Loaded engine for session %s with %d mutators, %d enabled",
		sess.ID, se.engine.Len(), len(se.engine.EnabledNames()))

	return se, nil
}

func (s *service) newSessionEngine(sess *entities.Session) *sessionEngine {
	view := &sessionView{session: sess}
	notifier := &eventNotifier{view: view, factory: s.factory, bus: s.bus}
	ledger := rewards.NewLedger()

	cfg := &mutators.EngineConfig{
		Authority:  view,
		Difficulty: view,
		Guard:      view,
		Ledger:     ledger,
		Notifier:   notifier,
		Observer:   notifier,
		Localizer:  s.localizer,
		Reporter: mutators.ErrorReporterFunc(func(err error) {
			s.reportError(view.sessionID(), err)
		}),
	}
	if s.messenger != nil {
		cfg.Messenger = &sessionMessenger{view: view, out: s.messenger}
	}

	return &sessionEngine{
		engine:   mutators.NewEngine(cfg),
		view:     view,
		notifier: notifier,
		ledger:   ledger,
	}
}

func (s *service) reportError(sessionID string, err error) {
	log.Printf("MutatorService: session=%s %v", sessionID, err)
	if s.metrics != nil {
		s.metrics.ConfigError(err)
	}
}
