package session

import (
	"context"
	"log"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/handlers/discord/utils"
)

func (h *Handler) join(ctx context.Context, sess *entities.Session, userID string) *utils.Reply {
	if sess.IsMember(userID) {
		return utils.Ephemeral("You are already part of **%s**.", sess.Name)
	}

	if _, err := h.services.SessionService.JoinSession(ctx, sess.ID, userID); err != nil {
		return failure("join", err)
	}
	return utils.Public("🎉 <@%s> joined **%s**!", userID, sess.Name)
}

// lifecycle starts, pauses, resumes or ends the channel's session
func (h *Handler) lifecycle(ctx context.Context, sess *entities.Session, userID, action string) *utils.Reply {
	svc := h.services.SessionService

	var err error
	var content string
	switch action {
	case ActionStart:
		err = svc.StartSession(ctx, sess.ID, userID)
		content = "▶️ **%s** has started. Good luck, adventurers!"
	case ActionPause:
		err = svc.PauseSession(ctx, sess.ID, userID)
		content = "⏸️ **%s** is paused."
	case ActionResume:
		err = svc.ResumeSession(ctx, sess.ID, userID)
		content = "▶️ **%s** has resumed."
	case ActionEnd:
		err = svc.EndSession(ctx, sess.ID, userID)
		content = "🏁 **%s** has ended. Thanks for playing!"
	}
	if err != nil {
		return failure(action, err)
	}

	if action == ActionEnd {
		// The sweep would drop the engine eventually, this frees it now
		if err := h.services.MutatorService.Forget(ctx, sess.ID); err != nil {
			log.Printf("SessionHandler: failed to forget mutators of %s: %v", sess.ID, err)
		}
	}

	return utils.Public(content, sess.Name)
}

func (h *Handler) encounter(ctx context.Context, sess *entities.Session, userID string, req *Request) *utils.Reply {
	svc := h.services.SessionService

	if req.Action == ActionEncounterFinish {
		if err := svc.FinishEncounter(ctx, sess.ID, userID); err != nil {
			if dnderr.Is(err, dnderr.CodeInvalidState) {
				return utils.Ephemeral("❌ No encounter is running.")
			}
			return failure("manage encounters in", err)
		}
		return utils.Public("🕊️ The encounter is over. Mutators can be switched on again.")
	}

	encounterID := req.EncounterID
	if encounterID == "" {
		encounterID = req.Interaction.ID
	}
	if err := svc.BeginEncounter(ctx, sess.ID, userID, encounterID); err != nil {
		if dnderr.Is(err, dnderr.CodeInvalidState) {
			return utils.Ephemeral("❌ An encounter can only begin in a started session with no encounter running.")
		}
		return failure("manage encounters in", err)
	}
	return utils.Public("⚔️ An encounter has begun! Mutators are locked until it is over.")
}
