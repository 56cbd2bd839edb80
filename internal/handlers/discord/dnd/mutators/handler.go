package mutators

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/handlers/discord/utils"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/mutators"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/services"
	mutatorService "github.com/KirkDiggler/dnd-bot-mutators/internal/services/mutator"
)

// Actions of the /mutators command
const (
	ActionList       = "list"
	ActionEnable     = "enable"
	ActionDisable    = "disable"
	ActionDifficulty = "difficulty"
	ActionRewards    = "rewards"
)

// Request is one /mutators invocation
type Request struct {
	Interaction *discordgo.InteractionCreate
	Action      string
	Name        string
	Difficulty  string
	Preview     bool
}

// Handler answers the /mutators command
type Handler struct {
	services  *services.Provider
	localizer mutators.Localizer
}

// NewHandler creates a /mutators handler
func NewHandler(provider *services.Provider, localizer mutators.Localizer) *Handler {
	return &Handler{
		services:  provider,
		localizer: localizer,
	}
}

// Handle runs the request against the session bound to the channel
func (h *Handler) Handle(ctx context.Context, req *Request) *utils.Reply {
	i := req.Interaction
	sess, err := h.services.SessionService.FindActiveForChannel(ctx, i.GuildID, i.ChannelID)
	if err != nil {
		if dnderr.IsNotFound(err) {
			return utils.Ephemeral("%s", h.localize("mutators.error.no_session"))
		}
		return h.failure(err)
	}

	userID := utils.UserID(i)
	switch req.Action {
	case ActionList:
		return h.list(ctx, sess, userID)
	case ActionEnable, ActionDisable:
		return h.toggle(ctx, sess, userID, req.Name, req.Action == ActionEnable)
	case ActionDifficulty:
		return h.difficulty(ctx, sess, userID, req.Difficulty, req.Preview)
	case ActionRewards:
		return h.rewards(ctx, sess)
	default:
		log.Printf("MutatorsHandler: unknown action %q", req.Action)
		return h.failure(dnderr.InvalidArgumentf("unknown action '%s'", req.Action))
	}
}

func (h *Handler) list(ctx context.Context, sess *entities.Session, userID string) *utils.Reply {
	entries, err := h.services.MutatorService.List(ctx, sess.ID, userID)
	if err != nil {
		return h.failure(err)
	}
	if len(entries) == 0 {
		return utils.Ephemeral("%s", h.localize("mutators.list.empty"))
	}

	title, err := h.services.MutatorService.Titles(ctx, sess.ID, sess.Name, false)
	if err != nil {
		return h.failure(err)
	}
	count, err := h.services.MutatorService.RewardDice(ctx, sess.ID)
	if err != nil {
		return h.failure(err)
	}

	embed := utils.NewEmbed(h.localize("mutators.list.header", title)).
		Description(h.describe(entries)).
		Footer(h.localize("mutators.list.dice", count)).
		Build()

	return &utils.Reply{
		Embeds:    []*discordgo.MessageEmbed{embed},
		Ephemeral: true,
	}
}

// describe renders one line per mutator in resolved order
func (h *Handler) describe(entries []*mutatorService.Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		marker := "⬜"
		if e.Enabled {
			marker = "✅"
		}

		title := e.Title
		if title == "" {
			title = e.Name
		}
		sb.WriteString(fmt.Sprintf("%s **%s** `%s`", marker, title, e.Name))

		if e.Dice > 0 {
			sb.WriteString(fmt.Sprintf(" +%dd6", e.Dice))
		}
		if !e.Available {
			sb.WriteString(" · " + h.localize("mutators.list.unavailable"))
		}
		if len(e.Conflicts) > 0 {
			sb.WriteString(" · " + h.localize("mutators.list.conflicts", strings.Join(e.Conflicts, ", ")))
		}
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (h *Handler) toggle(ctx context.Context, sess *entities.Session, userID, name string, enabled bool) *utils.Reply {
	name = strings.TrimSpace(name)
	result, err := h.services.MutatorService.Toggle(ctx, &mutatorService.ToggleInput{
		SessionID: sess.ID,
		ActorID:   userID,
		Name:      name,
		Enabled:   enabled,
	})
	if err != nil {
		switch {
		case dnderr.IsPermissionDenied(err):
			return utils.Ephemeral("%s", h.localize("mutators.error.not_dm"))
		case dnderr.IsNotFound(err):
			return utils.Ephemeral("%s", h.localize("mutators.toggle.unknown", name))
		case dnderr.IsRejected(err):
			content := h.localize("mutators.toggle.rejected", name)
			if conflicts, ok := dnderr.GetMeta(err)["conflicts"].([]string); ok && len(conflicts) > 0 {
				content += "\n" + h.localize("mutators.list.conflicts", strings.Join(conflicts, ", "))
			}
			return utils.Ephemeral("%s", content)
		default:
			return h.failure(err)
		}
	}

	key := "mutators.toggle.disabled"
	if result.Enabled {
		key = "mutators.toggle.enabled"
	}
	content := h.localize(key, result.Name)
	if result.Changed {
		content += "\n" + h.localize("mutators.list.dice", result.RewardDice)
	}
	return utils.Public("%s", content)
}

func (h *Handler) difficulty(ctx context.Context, sess *entities.Session, userID, value string, preview bool) *utils.Reply {
	difficulty := entities.Difficulty(strings.ToLower(strings.TrimSpace(value)))
	if !difficulty.IsValid() {
		return utils.Ephemeral("%s", h.localize("mutators.difficulty.invalid", value))
	}

	change := h.services.MutatorService.SetDifficulty
	key := "mutators.difficulty.set"
	if preview {
		change = h.services.MutatorService.PreviewDifficulty
		key = "mutators.difficulty.preview"
	}

	if _, err := change(ctx, sess.ID, userID, difficulty); err != nil {
		if dnderr.IsPermissionDenied(err) {
			return utils.Ephemeral("%s", h.localize("mutators.error.not_dm"))
		}
		return h.failure(err)
	}

	return utils.Public("%s", h.localize(key, difficulty.String()))
}

func (h *Handler) rewards(ctx context.Context, sess *entities.Session) *utils.Reply {
	result, err := h.services.MutatorService.RollRewards(ctx, sess.ID)
	if err != nil {
		return h.failure(err)
	}
	if result.Count == 0 {
		return utils.Public("%s", h.localize("mutators.rewards.none"))
	}
	return utils.Public("%s", h.localize("mutators.rewards.rolled", result.String()))
}

func (h *Handler) failure(err error) *utils.Reply {
	log.Printf("MutatorsHandler: %v", err)
	return utils.Ephemeral("❌ %s", h.localize("mutators.error.generic"))
}

func (h *Handler) localize(key string, args ...any) string {
	return h.localizer.Localize(key, args...)
}
