package utils

//go:generate mockgen -destination=mock/mock_responder.go -package=mockutils -source=reply.go

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Responder is the part of a discordgo session used to answer interactions
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Reply is what a command handler wants shown to the user
type Reply struct {
	Content   string
	Embeds    []*discordgo.MessageEmbed
	Ephemeral bool
}

// Ephemeral builds a private text reply
func Ephemeral(format string, args ...any) *Reply {
	return &Reply{
		Content:   fmt.Sprintf(format, args...),
		Ephemeral: true,
	}
}

// Public builds a text reply visible to the channel
func Public(format string, args ...any) *Reply {
	return &Reply{Content: fmt.Sprintf(format, args...)}
}

// Respond sends the reply as the interaction's initial response
func Respond(s Responder, i *discordgo.InteractionCreate, reply *Reply) error {
	if reply == nil {
		return nil
	}

	data := &discordgo.InteractionResponseData{
		Content: reply.Content,
		Embeds:  reply.Embeds,
	}
	if reply.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		return fmt.Errorf("failed to respond to interaction: %w", err)
	}
	return nil
}

// UserID returns the invoking user whether the command came from a guild or a DM
func UserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
