package mutator_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/definitions"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/dice"
	mockdice "github.com/KirkDiggler/dnd-bot-mutators/internal/dice/mock"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/events"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/metrics"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/mutators"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/repositories/gamesessions"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/repositories/mutatorsets"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/services/mutator"
	mockmutator "github.com/KirkDiggler/dnd-bot-mutators/internal/services/mutator/mock"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/testutils"
)

const (
	sessionID = "sess-1"
	dmID      = "dm-1"
	playerID  = "player-1"
)

type MutatorServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	ctx       context.Context
	sessions  gamesessions.Repository
	sets      mutatorsets.Repository
	messenger *mockmutator.MockMessenger
	roller    *mockdice.MockRoller
	metrics   *metrics.Metrics
	bus       *events.Bus
	events    []string
	svc       mutator.Service
}

func (s *MutatorServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.sessions = gamesessions.NewInMemoryRepository()
	s.sets = mutatorsets.NewInMemoryRepository()
	s.messenger = mockmutator.NewMockMessenger(s.ctrl)
	s.roller = mockdice.NewMockRoller(s.ctrl)
	s.metrics = metrics.New()
	s.bus = events.NewBus()
	s.events = nil

	s.bus.Subscribe(events.ListenerFunc{
		Name:  "recorder",
		Order: events.PriorityPresentation,
		Fn: func(event events.Event) error {
			if e, ok := event.(*events.MutatorEvent); ok {
				s.events = append(s.events, string(e.GetType())+":"+e.Mutator)
			}
			return nil
		},
	}, events.EventTypeMutatorEnabled, events.EventTypeMutatorDisabled, events.EventTypeMutatorForcedDisabled)

	sess := testutils.CreateTestSessionWithPlayers(sessionID, dmID, playerID)
	sess.Difficulty = entities.DifficultyHard
	s.Require().NoError(s.sessions.Create(s.ctx, sess))

	s.svc = mutator.NewService(&mutator.ServiceConfig{
		Sessions:    s.sessions,
		Sets:        s.sets,
		Bus:         s.bus,
		Metrics:     s.metrics,
		Messenger:   s.messenger,
		Roller:      s.roller,
		Definitions: testutils.CreateTestDefinitions(),
	})
}

func (s *MutatorServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MutatorServiceTestSuite) toggle(name string, enabled bool) (*mutator.ToggleResult, error) {
	return s.svc.Toggle(s.ctx, &mutator.ToggleInput{
		SessionID: sessionID,
		ActorID:   dmID,
		Name:      name,
		Enabled:   enabled,
	})
}

func (s *MutatorServiceTestSuite) persisted() []string {
	names, err := s.sets.Get(s.ctx, sessionID)
	s.Require().NoError(err)
	return names
}

func (s *MutatorServiceTestSuite) TestNewService_PanicsWithoutRepositories() {
	s.Panics(func() { mutator.NewService(&mutator.ServiceConfig{Sets: s.sets}) })
	s.Panics(func() { mutator.NewService(&mutator.ServiceConfig{Sessions: s.sessions}) })
}

func (s *MutatorServiceTestSuite) TestToggle_EnablesAndPersists() {
	result, err := s.toggle("brutal", true)
	s.Require().NoError(err)

	s.True(result.Enabled)
	s.True(result.Changed)
	s.Equal([]string{"brutal"}, result.EnabledNames)
	s.Equal(2, result.RewardDice)
	s.Equal([]string{"brutal"}, s.persisted())
	s.Equal([]string{"mutator.enabled:brutal"}, s.events)

	again, err := s.toggle("brutal", true)
	s.Require().NoError(err)
	s.False(again.Changed)
}

func (s *MutatorServiceTestSuite) TestToggle_CascadeKeepsResolvedOrder() {
	_, err := s.toggle("glass_cannon", true)
	s.Require().NoError(err)
	s.events = nil

	result, err := s.toggle("brutal", true)
	s.Require().NoError(err)

	s.Equal([]string{
		"mutator.disabled:glass_cannon",
		"mutator.enabled:brutal",
		"mutator.enabled:glass_cannon",
	}, s.events)
	s.Equal([]string{"brutal", "glass_cannon"}, result.EnabledNames)
	s.Equal(3, result.RewardDice)
	s.Equal([]string{"brutal", "glass_cannon"}, s.persisted())

	count, err := testutil.GatherAndCount(s.metrics.Registry(), "mutator_transitions_total")
	s.Require().NoError(err)
	s.Equal(3, count, "glass_cannon enabled and disabled, brutal enabled")
}

func (s *MutatorServiceTestSuite) TestToggle_OnlyDM() {
	_, err := s.svc.Toggle(s.ctx, &mutator.ToggleInput{
		SessionID: sessionID,
		ActorID:   playerID,
		Name:      "brutal",
		Enabled:   true,
	})
	s.Require().Error(err)
	s.True(dnderr.IsPermissionDenied(err))
	s.Empty(s.persisted())
}

func (s *MutatorServiceTestSuite) TestToggle_InvalidInput() {
	testCases := []struct {
		name  string
		input *mutator.ToggleInput
		check func(error) bool
	}{
		{name: "nil input", check: func(err error) bool { return dnderr.Is(err, dnderr.CodeInvalidArgument) }},
		{name: "missing name", input: &mutator.ToggleInput{SessionID: sessionID, ActorID: dmID}, check: func(err error) bool { return dnderr.Is(err, dnderr.CodeInvalidArgument) }},
		{name: "missing actor", input: &mutator.ToggleInput{SessionID: sessionID, Name: "brutal"}, check: func(err error) bool { return dnderr.Is(err, dnderr.CodeInvalidArgument) }},
		{name: "unknown session", input: &mutator.ToggleInput{SessionID: "nope", ActorID: dmID, Name: "brutal"}, check: dnderr.IsNotFound},
		{name: "unknown mutator", input: &mutator.ToggleInput{SessionID: sessionID, ActorID: dmID, Name: "ghost"}, check: dnderr.IsNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.Toggle(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error %v", err)
		})
	}
}

func (s *MutatorServiceTestSuite) TestToggle_IncompatibleIsRejectedWithConflicts() {
	_, err := s.toggle("brutal", true)
	s.Require().NoError(err)

	_, err = s.toggle("pacifist", true)
	s.Require().Error(err)
	s.True(dnderr.IsRejected(err))
	s.Equal([]string{"brutal"}, dnderr.GetMeta(err)["conflicts"])
	s.Equal([]string{"brutal"}, s.persisted())
}

func (s *MutatorServiceTestSuite) TestToggle_EncounterBlocksEnableOnly() {
	_, err := s.toggle("glass_cannon", true)
	s.Require().NoError(err)

	sess, err := s.sessions.Get(s.ctx, sessionID)
	s.Require().NoError(err)
	testutils.StartTestEncounter(sess, "enc-1")
	s.Require().NoError(s.sessions.Update(s.ctx, sess))

	_, err = s.toggle("brutal", true)
	s.Require().Error(err)
	s.True(dnderr.IsRejected(err))

	result, err := s.toggle("glass_cannon", false)
	s.Require().NoError(err)
	s.False(result.Enabled)
}

func (s *MutatorServiceTestSuite) TestSetDifficulty_BroadcastsAndCommits() {
	_, err := s.toggle("brutal", true)
	s.Require().NoError(err)
	_, err = s.toggle("glass_cannon", true)
	s.Require().NoError(err)
	s.events = nil

	s.messenger.EXPECT().
		SendChannel("test-channel", "Mutators disabled for everyone because they do not support the selected difficulty: Brutal").
		Return(nil)

	result, err := s.svc.SetDifficulty(s.ctx, sessionID, dmID, entities.DifficultyEasy)
	s.Require().NoError(err)

	s.Equal([]string{"brutal"}, result.Disabled)
	s.False(result.Preview)
	s.Equal([]string{"glass_cannon"}, s.persisted())
	s.Contains(s.events, "mutator.forced_disabled:brutal")

	sess, err := s.sessions.Get(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Equal(entities.DifficultyEasy, sess.Difficulty)

	count, err := testutil.GatherAndCount(s.metrics.Registry(), "mutator_forced_disables_total")
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *MutatorServiceTestSuite) TestPreviewDifficulty_KeepsCommittedDifficulty() {
	_, err := s.toggle("brutal", true)
	s.Require().NoError(err)

	s.messenger.EXPECT().SendChannel("test-channel", gomock.Any()).Return(nil)

	result, err := s.svc.PreviewDifficulty(s.ctx, sessionID, dmID, entities.DifficultyMedium)
	s.Require().NoError(err)
	s.True(result.Preview)
	s.Equal([]string{"brutal"}, result.Disabled)

	sess, err := s.sessions.Get(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Equal(entities.DifficultyHard, sess.Difficulty)
	s.Require().NotNil(sess.PreviewDifficulty)
	s.Equal(entities.DifficultyMedium, *sess.PreviewDifficulty)

	// brutal stays unavailable while the preview is pending
	_, err = s.toggle("brutal", true)
	s.True(dnderr.IsRejected(err))
}

func (s *MutatorServiceTestSuite) TestDifficulty_Validation() {
	_, err := s.svc.SetDifficulty(s.ctx, sessionID, dmID, entities.Difficulty("nightmare"))
	s.True(dnderr.Is(err, dnderr.CodeInvalidArgument))

	_, err = s.svc.SetDifficulty(s.ctx, sessionID, playerID, entities.DifficultyEasy)
	s.True(dnderr.IsPermissionDenied(err))
}

func (s *MutatorServiceTestSuite) TestSweep_EchoesToDM() {
	_, err := s.toggle("brutal", true)
	s.Require().NoError(err)

	// Difficulty changed behind the service's back
	sess, err := s.sessions.Get(s.ctx, sessionID)
	s.Require().NoError(err)
	sess.Difficulty = entities.DifficultyEasy
	s.Require().NoError(s.sessions.Update(s.ctx, sess))

	s.messenger.EXPECT().
		SendDirect(dmID, "Mutators disabled because they are no longer available: Brutal").
		Return(nil)

	disabled, err := s.svc.Sweep(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Equal([]string{"brutal"}, disabled)

	disabled, err = s.svc.Sweep(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Empty(disabled)
}

func (s *MutatorServiceTestSuite) TestSweepAll_DropsGoneAndEndedSessions() {
	other := testutils.CreateTestSession("sess-2", dmID, "Other")
	s.Require().NoError(s.sessions.Create(s.ctx, other))

	_, err := s.svc.List(s.ctx, sessionID, dmID)
	s.Require().NoError(err)
	_, err = s.svc.List(s.ctx, "sess-2", dmID)
	s.Require().NoError(err)
	s.Require().NoError(s.sets.Save(s.ctx, "sess-2", []string{"pacifist"}))

	s.Require().NoError(s.sessions.Delete(s.ctx, sessionID))
	other.End()
	s.Require().NoError(s.sessions.Update(s.ctx, other))

	s.Require().NoError(s.svc.SweepAll(s.ctx))

	names, err := s.sets.Get(s.ctx, "sess-2")
	s.Require().NoError(err)
	s.Empty(names, "ended session forgotten")

	count, err := testutil.GatherAndCount(s.metrics.Registry(), "mutator_sweep_duration_seconds")
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *MutatorServiceTestSuite) TestEngine_RestoresPersistedSet() {
	s.Require().NoError(s.sets.Save(s.ctx, sessionID, []string{"glass_cannon", "ghost", "brutal"}))

	entries, err := s.svc.List(s.ctx, sessionID, dmID)
	s.Require().NoError(err)

	enabled := map[string]bool{}
	for _, e := range entries {
		enabled[e.Name] = e.Enabled
	}
	s.True(enabled["brutal"])
	s.True(enabled["glass_cannon"])
	s.Equal([]string{"brutal", "glass_cannon"}, s.persisted(), "unknown names dropped, resolved order saved")

	pool, err := s.svc.RewardDice(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Equal(3, pool)
}

func (s *MutatorServiceTestSuite) TestEngine_RestoreIgnoresEncounterLock() {
	sess, err := s.sessions.Get(s.ctx, sessionID)
	s.Require().NoError(err)
	testutils.StartTestEncounter(sess, "enc-1")
	s.Require().NoError(s.sessions.Update(s.ctx, sess))
	s.Require().NoError(s.sets.Save(s.ctx, sessionID, []string{"brutal"}))

	pool, err := s.svc.RewardDice(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Equal(2, pool)
}

func (s *MutatorServiceTestSuite) TestList_ShowsAvailabilityForActor() {
	_, err := s.toggle("brutal", true)
	s.Require().NoError(err)

	entries, err := s.svc.List(s.ctx, sessionID, dmID)
	s.Require().NoError(err)
	s.Require().Len(entries, 4)

	byName := map[string]*mutator.Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	s.True(byName["brutal"].Available)
	s.True(byName["glass_cannon"].Available)
	s.False(byName["pacifist"].Available)
	s.Equal([]string{"brutal"}, byName["pacifist"].Conflicts)
	s.Equal([]string{"brutal"}, byName["lone_wolf"].Conflicts)

	entries, err = s.svc.List(s.ctx, sessionID, playerID)
	s.Require().NoError(err)
	for _, e := range entries {
		if !e.Enabled {
			s.False(e.Available, "%s not available to players", e.Name)
		}
	}
}

func (s *MutatorServiceTestSuite) TestRegisterDefinitions_ReachesLiveEngines() {
	_, err := s.svc.List(s.ctx, sessionID, dmID)
	s.Require().NoError(err)

	errs := s.svc.RegisterDefinitions([]definitions.Definition{
		{Name: "brutal"},
		{Name: "haunted", Config: mutators.Config{Title: "Haunted", Dice: 1}},
	})
	s.Require().Len(errs, 1)
	s.True(dnderr.IsAlreadyExists(errs[0]))

	result, err := s.toggle("haunted", true)
	s.Require().NoError(err)
	s.True(result.Enabled)

	count, err := testutil.GatherAndCount(s.metrics.Registry(), "mutator_config_errors_total")
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *MutatorServiceTestSuite) TestTitles() {
	_, err := s.toggle("glass_cannon", true)
	s.Require().NoError(err)

	title, err := s.svc.Titles(s.ctx, sessionID, "Crypt", false)
	s.Require().NoError(err)
	s.Equal("Crypt Glass Cannon", title)
}

func (s *MutatorServiceTestSuite) TestRollRewards() {
	_, err := s.toggle("brutal", true)
	s.Require().NoError(err)

	expected := &dice.RollResult{Count: 2, Sides: 6, Rolls: []int{3, 6}, Total: 9}
	s.roller.EXPECT().Roll(2, 6, 0).Return(expected, nil)

	result, err := s.svc.RollRewards(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Equal(expected, result)
}

func (s *MutatorServiceTestSuite) TestForget() {
	_, err := s.toggle("brutal", true)
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Forget(s.ctx, sessionID))
	s.Empty(s.persisted())

	pool, err := s.svc.RewardDice(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Equal(0, pool, "fresh engine after forget")

	s.Error(s.svc.Forget(s.ctx, ""))
}

func TestMutatorServiceSuite(t *testing.T) {
	suite.Run(t, new(MutatorServiceTestSuite))
}

func TestSessionMessenger_NoMessengerDropsNotices(t *testing.T) {
	ctx := context.Background()
	sessions := gamesessions.NewInMemoryRepository()
	sess := testutils.CreateTestSession(sessionID, dmID, "Quiet")
	sess.Difficulty = entities.DifficultyDeadly
	require.NoError(t, sessions.Create(ctx, sess))

	svc := mutator.NewService(&mutator.ServiceConfig{
		Sessions:    sessions,
		Sets:        mutatorsets.NewInMemoryRepository(),
		Definitions: testutils.CreateTestDefinitions(),
	})

	_, err := svc.Toggle(ctx, &mutator.ToggleInput{SessionID: sessionID, ActorID: dmID, Name: "brutal", Enabled: true})
	require.NoError(t, err)

	result, err := svc.SetDifficulty(ctx, sessionID, dmID, entities.DifficultyEasy)
	require.NoError(t, err)
	assert.Equal(t, []string{"brutal"}, result.Disabled)
}
