package announce

import (
	"context"
	"fmt"

	"thumbs_up/configs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type telegramAnnouncer struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramAnnouncer(config configs.Bot) (Announcer, error) {
	bot, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &telegramAnnouncer{
		bot:    bot,
		chatID: config.ChatID,
	}, nil
}

func (a *telegramAnnouncer) Announce(_ context.Context, text string) error {
	message := tgbotapi.NewMessage(a.chatID, text)
	message.DisableWebPagePreview = true

	if _, err := a.bot.Send(message); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	return nil
}
