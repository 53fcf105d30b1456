package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramBot is the part of *tgbotapi.BotAPI used for delivery.
type TelegramBot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

var _ Notifier = (*TelegramNotifier)(nil)

type TelegramNotifier struct {
	bot    TelegramBot
	chatId int64
}

func NewTelegramNotifier(bot TelegramBot, chatId int64) *TelegramNotifier {
	return &TelegramNotifier{
		bot:    bot,
		chatId: chatId,
	}
}

func (n *TelegramNotifier) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.chatId, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send to %d: %w", n.chatId, err)
	}
	return nil
}
