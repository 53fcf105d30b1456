package ioc

import (
	"fmt"
	"log/slog"

	"github.com/KNICEX/surge-monitor/internal/service/notification"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/slack-go/slack"
)

// InitNotifier 返回 Telegram 通知, 配置了 Slack 时同时投递到 Slack
func InitNotifier(cfg Config) (notification.Notifier, error) {
	tg, err := InitTelegramNotifier(cfg.Notify.Telegram)
	if err != nil {
		return nil, err
	}
	sn := InitSlackNotifier(cfg.Notify.Slack)
	if sn == nil {
		return tg, nil
	}
	return notification.Multi{tg, sn}, nil
}

// InitTelegramNotifier 启动时调用 getMe 校验 token, 网络或鉴权失败返回错误
func InitTelegramNotifier(cfg TelegramConfig) (*notification.TelegramNotifier, error) {
	endpoint := cfg.ApiEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(cfg.BotToken, endpoint)
	if err != nil {
		return nil, fmt.Errorf("authorize telegram bot: %w", err)
	}
	slog.Info("telegram bot authorized", "bot", bot.Self.UserName)
	return notification.NewTelegramNotifier(bot, cfg.ChatId), nil
}

func InitSlackNotifier(cfg SlackConfig) *notification.SlackNotifier {
	if cfg.BotToken == "" || cfg.ChannelId == "" {
		return nil
	}
	return notification.NewSlackNotifier(slack.New(cfg.BotToken), cfg.ChannelId)
}
