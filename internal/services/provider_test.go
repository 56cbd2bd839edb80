package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/services"
	mutatorService "github.com/KirkDiggler/dnd-bot-mutators/internal/services/mutator"
	sessionService "github.com/KirkDiggler/dnd-bot-mutators/internal/services/session"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/testutils"
)

func TestProvider_ServicesShareSessions(t *testing.T) {
	ctx := context.Background()
	provider := services.NewProvider(&services.ProviderConfig{
		Definitions: testutils.CreateTestDefinitions(),
	})
	require.NotNil(t, provider.EventBus)

	sess, err := provider.SessionService.CreateSession(ctx, &sessionService.CreateSessionInput{
		Name:       "Crypt",
		RealmID:    "realm",
		ChannelID:  "chan",
		CreatorID:  "dm",
		Difficulty: entities.DifficultyDeadly,
	})
	require.NoError(t, err)

	result, err := provider.MutatorService.Toggle(ctx, &mutatorService.ToggleInput{
		SessionID: sess.ID,
		ActorID:   "dm",
		Name:      "brutal",
		Enabled:   true,
	})
	require.NoError(t, err)
	assert.True(t, result.Enabled)

	require.NoError(t, provider.SessionService.StartSession(ctx, sess.ID, "dm"))
	require.NoError(t, provider.SessionService.BeginEncounter(ctx, sess.ID, "dm", "enc-1"))

	_, err = provider.MutatorService.Toggle(ctx, &mutatorService.ToggleInput{
		SessionID: sess.ID,
		ActorID:   "dm",
		Name:      "glass_cannon",
		Enabled:   true,
	})
	assert.Error(t, err, "encounter started through the session service locks mutators")
}
