package discord

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	mutatorsHandler "github.com/KirkDiggler/dnd-bot-mutators/internal/handlers/discord/dnd/mutators"
	sessionHandler "github.com/KirkDiggler/dnd-bot-mutators/internal/handlers/discord/dnd/session"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/handlers/discord/utils"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/i18n"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/mutators"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/services"
)

// commandTimeout bounds the service calls of a single interaction. Discord
// drops the interaction after three seconds anyway.
const commandTimeout = 2500 * time.Millisecond

// maxChoices is the most autocomplete choices Discord accepts
const maxChoices = 25

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider

	sessionHandler  *sessionHandler.Handler
	mutatorsHandler *mutatorsHandler.Handler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
	Localizer       mutators.Localizer
}

// NewHandler creates a new Discord handler. Replies use the base locale when
// no localizer is configured.
func NewHandler(cfg *HandlerConfig) *Handler {
	localizer := cfg.Localizer
	if localizer == nil {
		localizer = defaultLocalizer()
	}

	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		sessionHandler:  sessionHandler.NewHandler(cfg.ServiceProvider),
		mutatorsHandler: mutatorsHandler.NewHandler(cfg.ServiceProvider, localizer),
	}
}

func defaultLocalizer() mutators.Localizer {
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		log.Printf("Failed to load embedded locale catalogs, replies will show message keys: %v", err)
		return keyLocalizer{}
	}
	return bundle.Localizer(i18n.BaseLocale)
}

// keyLocalizer renders every message as its key
type keyLocalizer struct{}

func (keyLocalizer) Localize(key string, _ ...any) string {
	return key
}

func difficultyChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(entities.AllDifficulties))
	for _, d := range entities.AllDifficulties {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  strings.ToUpper(d.String()[:1]) + d.String()[1:],
			Value: d.String(),
		})
	}
	return choices
}

func mutatorNameOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "name",
		Description:  description,
		Required:     true,
		Autocomplete: true,
	}
}

// Commands returns the slash commands the bot serves
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "dnd",
			Description: "D&D 5e bot commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "session",
					Description: "Session management commands",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        sessionHandler.ActionCreate,
							Description: "Create a new game session in this channel",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "name",
									Description: "Session name",
									Required:    true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "difficulty",
									Description: "Starting difficulty (optional)",
									Required:    false,
									Choices:     difficultyChoices(),
								},
							},
						},
						{
							Name:        sessionHandler.ActionList,
							Description: "List the sessions running on this server",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        sessionHandler.ActionJoin,
							Description: "Join the session running in this channel",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        sessionHandler.ActionStart,
							Description: "Start the session (DM only)",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        sessionHandler.ActionPause,
							Description: "Pause the session (DM only)",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        sessionHandler.ActionResume,
							Description: "Resume the session (DM only)",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        sessionHandler.ActionEnd,
							Description: "End the session (DM only)",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
					},
				},
				{
					Name:        "encounter",
					Description: "Encounter commands",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        sessionHandler.ActionEncounterBegin,
							Description: "Begin an encounter, locking mutators (DM only)",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "id",
									Description: "Encounter ID (optional)",
									Required:    false,
								},
							},
						},
						{
							Name:        sessionHandler.ActionEncounterFinish,
							Description: "Finish the running encounter (DM only)",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
					},
				},
			},
		},
		{
			Name:        "mutators",
			Description: "Switch session mutators on and off",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        mutatorsHandler.ActionList,
					Description: "Show every mutator and whether it is on",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        mutatorsHandler.ActionEnable,
					Description: "Switch a mutator on (DM only)",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options:     []*discordgo.ApplicationCommandOption{mutatorNameOption("Mutator to switch on")},
				},
				{
					Name:        mutatorsHandler.ActionDisable,
					Description: "Switch a mutator off (DM only)",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options:     []*discordgo.ApplicationCommandOption{mutatorNameOption("Mutator to switch off")},
				},
				{
					Name:        mutatorsHandler.ActionDifficulty,
					Description: "Change the difficulty, switching off mutators that do not support it (DM only)",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "level",
							Description: "Difficulty",
							Required:    true,
							Choices:     difficultyChoices(),
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "preview",
							Description: "Only preview the difficulty in the lobby",
							Required:    false,
						},
					},
				},
				{
					Name:        mutatorsHandler.ActionRewards,
					Description: "Roll the bonus reward dice of the enabled mutators",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
	}
}

// RegisterCommands registers slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range Commands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	Chain(h.dispatch, Recover("interaction"), Logging())(s, i)
}

func (h *Handler) dispatch(s utils.Responder, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.handleAutocomplete(s, i)
	}
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(s utils.Responder, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	reply := h.route(ctx, i)
	if reply == nil {
		return
	}
	if err := utils.Respond(s, i, reply); err != nil {
		log.Printf("Error responding to /%s: %v", i.ApplicationCommandData().Name, err)
	}
}

// route picks the handler for a command and returns its reply
func (h *Handler) route(ctx context.Context, i *discordgo.InteractionCreate) *utils.Reply {
	data := i.ApplicationCommandData()
	path := utils.SubcommandPath(i)

	switch data.Name {
	case "mutators":
		if len(path) == 0 {
			return nil
		}
		return h.mutatorsHandler.Handle(ctx, &mutatorsHandler.Request{
			Interaction: i,
			Action:      path[0],
			Name:        utils.GetStringOption(i, "name"),
			Difficulty:  utils.GetStringOption(i, "level"),
			Preview:     utils.GetBoolOption(i, "preview"),
		})

	case "dnd":
		if len(path) < 2 {
			return nil
		}
		switch path[0] {
		case "session", "encounter":
			return h.sessionHandler.Handle(ctx, &sessionHandler.Request{
				Interaction: i,
				Action:      path[1],
				Name:        utils.GetStringOption(i, "name"),
				Difficulty:  utils.GetStringOption(i, "difficulty"),
				EncounterID: utils.GetStringOption(i, "id"),
			})
		}
	}

	return nil
}

// handleAutocomplete suggests mutator names for /mutators enable and disable
func (h *Handler) handleAutocomplete(s utils.Responder, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != "mutators" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	choices := h.suggestMutators(ctx, i)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		log.Printf("Error responding to autocomplete: %v", err)
	}
}

// suggestMutators lists the channel session's mutators whose name or title
// starts with what the user typed. Enable only offers mutators that are off,
// disable only those that are on.
func (h *Handler) suggestMutators(ctx context.Context, i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0)

	path := utils.SubcommandPath(i)
	if len(path) == 0 {
		return choices
	}

	sess, err := h.ServiceProvider.SessionService.FindActiveForChannel(ctx, i.GuildID, i.ChannelID)
	if err != nil {
		return choices
	}

	entries, err := h.ServiceProvider.MutatorService.List(ctx, sess.ID, utils.UserID(i))
	if err != nil {
		log.Printf("Error listing mutators for autocomplete: %v", err)
		return choices
	}

	typed := ""
	if focused := utils.FocusedOption(i); focused != nil {
		typed = strings.ToLower(focused.StringValue())
	}
	for _, e := range entries {
		if len(choices) == maxChoices {
			break
		}
		if path[0] == mutatorsHandler.ActionEnable && (e.Enabled || !e.Available) {
			continue
		}
		if path[0] == mutatorsHandler.ActionDisable && !e.Enabled {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(e.Name), typed) && !strings.HasPrefix(strings.ToLower(e.Title), typed) {
			continue
		}

		label := e.Name
		if e.Title != "" {
			label = fmt.Sprintf("%s (%s)", e.Title, e.Name)
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  label,
			Value: e.Name,
		})
	}
	return choices
}
