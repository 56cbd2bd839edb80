package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/handlers/discord/utils"
	sessionService "github.com/KirkDiggler/dnd-bot-mutators/internal/services/session"
)

func (h *Handler) create(ctx context.Context, req *Request) *utils.Reply {
	// Validate session name
	if strings.TrimSpace(req.Name) == "" {
		return utils.Ephemeral("❌ Session name is required!")
	}

	difficulty := entities.Difficulty(strings.ToLower(strings.TrimSpace(req.Difficulty)))
	if difficulty != "" && !difficulty.IsValid() {
		return utils.Ephemeral("❌ %s is not a difficulty. Pick easy, medium, hard or deadly.", req.Difficulty)
	}

	i := req.Interaction
	session, err := h.services.SessionService.CreateSession(ctx, &sessionService.CreateSessionInput{
		Name:       req.Name,
		RealmID:    i.GuildID,
		ChannelID:  i.ChannelID,
		CreatorID:  utils.UserID(i),
		Difficulty: difficulty,
	})
	if err != nil {
		return failure("create", err)
	}

	embed := utils.NewEmbed("🎲 Session Created!").
		Description(fmt.Sprintf("**%s** has been created successfully!", session.Name)).
		Color(utils.ColorSuccess).
		Field("📋 Details", sessionSummary(session), true).
		Field("🧪 Mutators", "Use `/mutators list` to see what can be switched on.", true).
		Footer(fmt.Sprintf("Session ID: %s", session.ID)).
		Build()

	return &utils.Reply{Embeds: []*discordgo.MessageEmbed{embed}}
}

func (h *Handler) list(ctx context.Context, req *Request) *utils.Reply {
	sessions, err := h.services.SessionService.ListActiveRealmSessions(ctx, req.Interaction.GuildID)
	if err != nil {
		return failure("list", err)
	}
	if len(sessions) == 0 {
		return utils.Ephemeral("No sessions are running on this server.")
	}

	builder := utils.NewEmbed("📜 Active Sessions")
	for _, sess := range sessions {
		builder.Field(sess.Name, fmt.Sprintf("%s\n**Channel:** <#%s>", sessionSummary(sess), sess.ChannelID), false)
	}

	return &utils.Reply{
		Embeds:    []*discordgo.MessageEmbed{builder.Build()},
		Ephemeral: true,
	}
}
