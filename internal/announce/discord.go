package announce

import (
	"context"
	"fmt"

	"thumbs_up/configs"

	"github.com/bwmarrin/discordgo"
)

type discordAnnouncer struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordAnnouncer(config configs.Discord) (Announcer, error) {
	session, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	return &discordAnnouncer{
		session:   session,
		channelID: config.ChannelID,
	}, nil
}

func (a *discordAnnouncer) Announce(_ context.Context, text string) error {
	if _, err := a.session.ChannelMessageSend(a.channelID, text); err != nil {
		return fmt.Errorf("failed to send discord message: %w", err)
	}

	return nil
}
