package discord

//go:generate mockgen -destination=mock/mock_messenger.go -package=mockdiscord -source=messenger.go

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// MessageSender is the part of a discordgo session the messenger needs
type MessageSender interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Messenger delivers mutator notices through Discord
type Messenger struct {
	sender MessageSender
}

// NewMessenger creates a messenger over a Discord session
func NewMessenger(sender MessageSender) *Messenger {
	return &Messenger{sender: sender}
}

// SendDirect sends a private message to a user
func (m *Messenger) SendDirect(userID, message string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user ID is required")
	}

	channel, err := m.sender.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel with %s: %w", userID, err)
	}

	if _, err := m.sender.ChannelMessageSend(channel.ID, message); err != nil {
		return fmt.Errorf("failed to send DM to %s: %w", userID, err)
	}

	log.Printf("Messenger: Sent DM to %s", userID)
	return nil
}

// SendChannel posts a message to a channel
func (m *Messenger) SendChannel(channelID, message string) error {
	if strings.TrimSpace(channelID) == "" {
		return fmt.Errorf("channel ID is required")
	}

	if _, err := m.sender.ChannelMessageSend(channelID, message); err != nil {
		return fmt.Errorf("failed to post to channel %s: %w", channelID, err)
	}
	return nil
}
