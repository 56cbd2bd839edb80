package session

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/handlers/discord/utils"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/services"
)

// Actions of the /dnd session command group
const (
	ActionCreate          = "create"
	ActionJoin            = "join"
	ActionStart           = "start"
	ActionPause           = "pause"
	ActionResume          = "resume"
	ActionEnd             = "end"
	ActionList            = "list"
	ActionEncounterBegin  = "begin"
	ActionEncounterFinish = "finish"
)

// Request is one /dnd session invocation
type Request struct {
	Interaction *discordgo.InteractionCreate
	Action      string
	Name        string
	Difficulty  string
	EncounterID string
}

// Handler answers the /dnd session command group
type Handler struct {
	services *services.Provider
}

// NewHandler creates a session handler
func NewHandler(provider *services.Provider) *Handler {
	return &Handler{
		services: provider,
	}
}

// Handle runs the request
func (h *Handler) Handle(ctx context.Context, req *Request) *utils.Reply {
	switch req.Action {
	case ActionCreate:
		return h.create(ctx, req)
	case ActionList:
		return h.list(ctx, req)
	}

	i := req.Interaction
	sess, err := h.services.SessionService.FindActiveForChannel(ctx, i.GuildID, i.ChannelID)
	if err != nil {
		if dnderr.IsNotFound(err) {
			return utils.Ephemeral("❌ No session is running in this channel. Use `/dnd session create` to start one.")
		}
		return failure("find session", err)
	}

	userID := utils.UserID(i)
	switch req.Action {
	case ActionJoin:
		return h.join(ctx, sess, userID)
	case ActionStart, ActionPause, ActionResume, ActionEnd:
		return h.lifecycle(ctx, sess, userID, req.Action)
	case ActionEncounterBegin, ActionEncounterFinish:
		return h.encounter(ctx, sess, userID, req)
	default:
		return failure("handle", dnderr.InvalidArgumentf("unknown session action '%s'", req.Action))
	}
}

// failure maps service errors onto the message shown to the user
func failure(action string, err error) *utils.Reply {
	switch {
	case dnderr.IsPermissionDenied(err):
		return utils.Ephemeral("❌ Only the DM can %s this session.", action)
	case dnderr.Is(err, dnderr.CodeInvalidState):
		return utils.Ephemeral("❌ Cannot %s while the session is %s.", action, dnderr.GetMeta(err)["status"])
	case dnderr.IsAlreadyExists(err):
		return utils.Ephemeral("❌ A session is already running in this channel.")
	default:
		log.Printf("SessionHandler: failed to %s: %v", action, err)
		return utils.Ephemeral("❌ Failed to %s session: %v", action, err)
	}
}

func statusEmoji(status entities.SessionStatus) string {
	switch status {
	case entities.SessionStatusActive:
		return "🟢"
	case entities.SessionStatusPaused:
		return "⏸️"
	case entities.SessionStatusEnded:
		return "🔴"
	default:
		return "📝"
	}
}

func sessionSummary(sess *entities.Session) string {
	return fmt.Sprintf("**Status:** %s %s\n**Difficulty:** %s\n**DM:** <@%s>\n**Members:** %d",
		statusEmoji(sess.Status), sess.Status, sess.Difficulty, sess.DMID, len(sess.Members))
}
