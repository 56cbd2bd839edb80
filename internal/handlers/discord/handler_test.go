package discord

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/handlers/discord/utils"
	mockutils "github.com/KirkDiggler/dnd-bot-mutators/internal/handlers/discord/utils/mock"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/i18n"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/services"
	mockmutator "github.com/KirkDiggler/dnd-bot-mutators/internal/services/mutator/mock"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/testutils"
)

const (
	guildID   = "guild-1"
	channelID = "channel-1"
	dmID      = "dm-1"
	playerID  = "player-1"
)

type option = discordgo.ApplicationCommandInteractionDataOption

func subcommand(name string, opts ...*option) *option {
	return &option{Name: name, Type: discordgo.ApplicationCommandOptionSubCommand, Options: opts}
}

func group(name string, sub *option) *option {
	return &option{Name: name, Type: discordgo.ApplicationCommandOptionSubCommandGroup, Options: []*option{sub}}
}

func stringOption(name, value string) *option {
	return &option{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func boolOption(name string, value bool) *option {
	return &option{Name: name, Type: discordgo.ApplicationCommandOptionBoolean, Value: value}
}

func interaction(kind discordgo.InteractionType, userID, command string, opts ...*option) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "interaction-1",
			Type:      kind,
			GuildID:   guildID,
			ChannelID: channelID,
			Member:    &discordgo.Member{User: &discordgo.User{ID: userID}},
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    command,
				Options: opts,
			},
		},
	}
}

func command(userID, name string, opts ...*option) *discordgo.InteractionCreate {
	return interaction(discordgo.InteractionApplicationCommand, userID, name, opts...)
}

type HandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	responder *mockutils.MockResponder
	messenger *mockmutator.MockMessenger
	handler   *Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.responder = mockutils.NewMockResponder(s.ctrl)
	s.messenger = mockmutator.NewMockMessenger(s.ctrl)

	bundle, err := i18n.LoadEmbedded()
	s.Require().NoError(err)
	localizer := bundle.Localizer(i18n.BaseLocale)

	provider := services.NewProvider(&services.ProviderConfig{
		Messenger:   s.messenger,
		Localizer:   localizer,
		Definitions: testutils.CreateTestDefinitions(),
	})
	s.handler = NewHandler(&HandlerConfig{
		ServiceProvider: provider,
		Localizer:       localizer,
	})

	s.send(command(dmID, "dnd", group("session", subcommand("create", stringOption("name", "Crypt")))))
}

// send dispatches the interaction and returns what was sent back
func (s *HandlerTestSuite) send(i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	var got *discordgo.InteractionResponse
	s.responder.EXPECT().
		InteractionRespond(i.Interaction, gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
			got = resp
			return nil
		})

	s.handler.dispatch(s.responder, i)
	s.Require().NotNil(got)
	return got
}

func (s *HandlerTestSuite) mutators(userID string, sub *option) *discordgo.InteractionResponseData {
	return s.send(command(userID, "mutators", sub)).Data
}

func (s *HandlerTestSuite) TestEnableRequiresSupportedDifficulty() {
	data := s.mutators(dmID, subcommand("enable", stringOption("name", "brutal")))
	s.Equal("brutal cannot be enabled right now.", data.Content)
	s.Equal(discordgo.MessageFlagsEphemeral, data.Flags)

	data = s.mutators(dmID, subcommand("difficulty", stringOption("level", "hard")))
	s.Equal("Difficulty set to hard.", data.Content)

	data = s.mutators(dmID, subcommand("enable", stringOption("name", "brutal")))
	s.Equal("brutal enabled.\nBonus reward dice: 2", data.Content)
	s.Zero(data.Flags, "enables are announced to the channel")
}

func (s *HandlerTestSuite) TestOnlyTheDMChangesMutators() {
	s.send(command(playerID, "dnd", group("session", subcommand("join"))))

	data := s.mutators(playerID, subcommand("enable", stringOption("name", "pacifist")))
	s.Equal("Only the DM can change mutators.", data.Content)

	data = s.mutators(playerID, subcommand("difficulty", stringOption("level", "deadly")))
	s.Equal("Only the DM can change mutators.", data.Content)
}

func (s *HandlerTestSuite) TestConflictsAreListedOnRejection() {
	s.mutators(dmID, subcommand("difficulty", stringOption("level", "hard")))
	s.mutators(dmID, subcommand("enable", stringOption("name", "brutal")))

	data := s.mutators(dmID, subcommand("enable", stringOption("name", "pacifist")))
	s.Equal("pacifist cannot be enabled right now.\nconflicts with brutal", data.Content)
}

func (s *HandlerTestSuite) TestUnknownMutatorAndDifficulty() {
	data := s.mutators(dmID, subcommand("enable", stringOption("name", "moonwalk")))
	s.Equal("There is no mutator called moonwalk.", data.Content)

	data = s.mutators(dmID, subcommand("difficulty", stringOption("level", "nightmare")))
	s.Equal("nightmare is not a difficulty. Pick easy, medium, hard or deadly.", data.Content)
}

func (s *HandlerTestSuite) TestDifficultyChangeBroadcastsDisabledMutators() {
	s.mutators(dmID, subcommand("difficulty", stringOption("level", "deadly")))
	s.mutators(dmID, subcommand("enable", stringOption("name", "brutal")))

	s.messenger.EXPECT().
		SendChannel(channelID, "Mutators disabled for everyone because they do not support the selected difficulty: Brutal").
		Return(nil)

	data := s.mutators(dmID, subcommand("difficulty", stringOption("level", "easy"), boolOption("preview", true)))
	s.Equal("Previewing difficulty easy.", data.Content)

	data = s.mutators(dmID, subcommand("rewards"))
	s.Equal("No bonus reward dice are in play.", data.Content)
}

func (s *HandlerTestSuite) TestListShowsResolvedOrderWithTitles() {
	s.mutators(dmID, subcommand("difficulty", stringOption("level", "hard")))
	s.mutators(dmID, subcommand("enable", stringOption("name", "glass_cannon")))
	s.mutators(dmID, subcommand("enable", stringOption("name", "brutal")))

	data := s.mutators(dmID, subcommand("list"))
	s.Equal(discordgo.MessageFlagsEphemeral, data.Flags)
	s.Require().Len(data.Embeds, 1)

	embed := data.Embeds[0]
	s.Equal("Mutators for Crypt Brutal Glass Cannon", embed.Title)
	s.Contains(embed.Description, "✅ **Brutal** `brutal` +2d6\n✅ **Glass Cannon** `glass_cannon` +1d6")
	s.Contains(embed.Description, "⬜ **Pacifist** `pacifist` · unavailable · conflicts with brutal")
	s.Equal("Bonus reward dice: 3", embed.Footer.Text)
}

func (s *HandlerTestSuite) TestEncounterLocksEnables() {
	s.send(command(dmID, "dnd", group("session", subcommand("start"))))

	data := s.send(command(dmID, "dnd", group("encounter", subcommand("begin")))).Data
	s.Equal("⚔️ An encounter has begun! Mutators are locked until it is over.", data.Content)

	data = s.mutators(dmID, subcommand("enable", stringOption("name", "lone_wolf")))
	s.Equal("lone_wolf cannot be enabled right now.", data.Content)

	s.send(command(dmID, "dnd", group("encounter", subcommand("finish"))))

	data = s.mutators(dmID, subcommand("enable", stringOption("name", "lone_wolf")))
	s.Equal("lone_wolf enabled.\nBonus reward dice: 3", data.Content)
}

func (s *HandlerTestSuite) TestAutocompleteOffersSwitchableMutators() {
	i := interaction(discordgo.InteractionApplicationCommandAutocomplete, dmID, "mutators",
		subcommand("enable", &option{Name: "name", Type: discordgo.ApplicationCommandOptionString, Value: "p", Focused: true}))

	resp := s.send(i)
	s.Equal(discordgo.InteractionApplicationCommandAutocompleteResult, resp.Type)
	s.Require().Len(resp.Data.Choices, 1)
	s.Equal("Pacifist (pacifist)", resp.Data.Choices[0].Name)
	s.Equal("pacifist", resp.Data.Choices[0].Value)
}

func (s *HandlerTestSuite) TestCommandsOutsideASession() {
	i := command(dmID, "mutators", subcommand("list"))
	i.ChannelID = "elsewhere"

	data := s.send(i).Data
	s.Equal("This channel has no active session.", data.Content)
}

func (s *HandlerTestSuite) TestSecondSessionInChannelRejected() {
	data := s.send(command(playerID, "dnd", group("session", subcommand("create", stringOption("name", "Other"))))).Data
	s.Equal("❌ A session is already running in this channel.", data.Content)
}

func (s *HandlerTestSuite) TestPanicsAreRecovered() {
	s.responder.EXPECT().
		InteractionRespond(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
			s.Contains(resp.Data.Content, "An unexpected error occurred: boom")
			return nil
		})

	Chain(func(utils.Responder, *discordgo.InteractionCreate) {
		panic("boom")
	}, Recover("test"), Logging())(s.responder, command(dmID, "mutators"))
}

func (s *HandlerTestSuite) TestPanicFallsBackToFollowup() {
	s.responder.EXPECT().InteractionRespond(gomock.Any(), gomock.Any()).Return(errors.New("already acknowledged"))
	s.responder.EXPECT().InteractionResponseEdit(gomock.Any(), gomock.Any()).Return(nil, errors.New("unknown message"))
	s.responder.EXPECT().
		FollowupMessageCreate(gomock.Any(), true, gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, _ bool, params *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal(discordgo.MessageFlagsEphemeral, params.Flags)
			s.Contains(params.Content, "boom")
			return &discordgo.Message{}, nil
		})

	Recover("test")(func(utils.Responder, *discordgo.InteractionCreate) {
		panic("boom")
	})(s.responder, command(dmID, "mutators"))
}

func TestChain_RunsOutermostFirst(t *testing.T) {
	var calls []string
	record := func(name string) Middleware {
		return func(next InteractionFunc) InteractionFunc {
			return func(s utils.Responder, i *discordgo.InteractionCreate) {
				calls = append(calls, name)
				next(s, i)
			}
		}
	}

	Chain(func(utils.Responder, *discordgo.InteractionCreate) {
		calls = append(calls, "handler")
	}, record("outer"), record("inner"))(nil, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}})

	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}

func TestNewHandler_DefaultsToBaseLocale(t *testing.T) {
	ctrl := gomock.NewController(t)
	responder := mockutils.NewMockResponder(ctrl)

	handler := NewHandler(&HandlerConfig{
		ServiceProvider: services.NewProvider(&services.ProviderConfig{
			Messenger:   mockmutator.NewMockMessenger(ctrl),
			Definitions: testutils.CreateTestDefinitions(),
		}),
	})

	var got *discordgo.InteractionResponse
	responder.EXPECT().
		InteractionRespond(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
			got = resp
			return nil
		})

	handler.dispatch(responder, command(dmID, "mutators", subcommand("list")))
	require.NotNil(t, got)
	assert.Equal(t, "This channel has no active session.", got.Data.Content)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func TestCommands_DeclareEverySubcommand(t *testing.T) {
	commands := Commands()
	require.Len(t, commands, 2)

	var mutatorSubcommands []string
	for _, opt := range commands[1].Options {
		mutatorSubcommands = append(mutatorSubcommands, opt.Name)
	}
	assert.Equal(t, "mutators", commands[1].Name)
	assert.Equal(t, []string{"list", "enable", "disable", "difficulty", "rewards"}, mutatorSubcommands)
	assert.True(t, commands[1].Options[1].Options[0].Autocomplete)
}
