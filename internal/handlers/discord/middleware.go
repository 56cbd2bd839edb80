package discord

import (
	"fmt"
	"log"
	"runtime/debug"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/handlers/discord/utils"
)

// InteractionFunc handles one interaction
type InteractionFunc func(utils.Responder, *discordgo.InteractionCreate)

// Middleware wraps an InteractionFunc
type Middleware func(next InteractionFunc) InteractionFunc

// Chain applies middlewares so the first one listed runs outermost
func Chain(handler InteractionFunc, middlewares ...Middleware) InteractionFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

// Recover turns a panic in next into an ephemeral error for the user
func Recover(name string) Middleware {
	return func(next InteractionFunc) InteractionFunc {
		return func(s utils.Responder, i *discordgo.InteractionCreate) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("PANIC in %s handler: %v\nStack trace:\n%s", name, r, debug.Stack())
					respondWithError(s, i, fmt.Sprintf("An unexpected error occurred: %v", r))
				}
			}()

			next(s, i)
		}
	}
}

// Logging logs each command with its caller and how long it took
func Logging() Middleware {
	return func(next InteractionFunc) InteractionFunc {
		return func(s utils.Responder, i *discordgo.InteractionCreate) {
			if i.Type != discordgo.InteractionApplicationCommand {
				next(s, i)
				return
			}

			start := time.Now()
			next(s, i)
			log.Printf("Interaction: /%s by %s took %s", commandLine(i), utils.UserID(i), time.Since(start).Round(time.Millisecond))
		}
	}
}

// commandLine renders "/dnd session create" as "dnd session create"
func commandLine(i *discordgo.InteractionCreate) string {
	parts := append([]string{i.ApplicationCommandData().Name}, utils.SubcommandPath(i)...)
	return strings.Join(parts, " ")
}

// respondWithError tries a fresh response, then an edit, then a followup
func respondWithError(s utils.Responder, i *discordgo.InteractionCreate, message string) {
	content := fmt.Sprintf("❌ %s", message)

	attempts := []func() error{
		func() error {
			return utils.Respond(s, i, &utils.Reply{Content: content, Ephemeral: true})
		},
		func() error {
			_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: &content,
			})
			return err
		},
		func() error {
			_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
				Content: content,
				Flags:   discordgo.MessageFlagsEphemeral,
			})
			return err
		},
	}

	for _, attempt := range attempts {
		if err := attempt(); err == nil {
			return
		}
	}

	log.Printf("Failed to send error response to user: %s", message)
}
