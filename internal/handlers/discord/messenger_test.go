package discord_test

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/handlers/discord"
	mockdiscord "github.com/KirkDiggler/dnd-bot-mutators/internal/handlers/discord/mock"
)

func TestMessenger_SendDirectOpensDMChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mockdiscord.NewMockMessageSender(ctrl)
	messenger := discord.NewMessenger(sender)

	gomock.InOrder(
		sender.EXPECT().UserChannelCreate("dm-1").Return(&discordgo.Channel{ID: "dm-channel"}, nil),
		sender.EXPECT().ChannelMessageSend("dm-channel", "Mutators disabled").Return(&discordgo.Message{}, nil),
	)

	require.NoError(t, messenger.SendDirect("dm-1", "Mutators disabled"))
}

func TestMessenger_SendDirectFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mockdiscord.NewMockMessageSender(ctrl)
	messenger := discord.NewMessenger(sender)

	assert.Error(t, messenger.SendDirect(" ", "hello"))

	sender.EXPECT().UserChannelCreate("dm-1").Return(nil, errors.New("blocked"))
	err := messenger.SendDirect("dm-1", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked")

	sender.EXPECT().UserChannelCreate("dm-1").Return(&discordgo.Channel{ID: "dm-channel"}, nil)
	sender.EXPECT().ChannelMessageSend("dm-channel", "hello").Return(nil, errors.New("rate limited"))
	assert.Error(t, messenger.SendDirect("dm-1", "hello"))
}

func TestMessenger_SendChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mockdiscord.NewMockMessageSender(ctrl)
	messenger := discord.NewMessenger(sender)

	sender.EXPECT().ChannelMessageSend("channel-1", "hello").Return(&discordgo.Message{}, nil)
	require.NoError(t, messenger.SendChannel("channel-1", "hello"))

	assert.Error(t, messenger.SendChannel("", "hello"))
}
