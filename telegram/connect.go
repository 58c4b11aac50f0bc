// Package telegram connects the bot and delivers follower notifications.
package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rockrev/misc"
)

// Connect do connection to telegram
func Connect(telegramToken string) *tgbotapi.BotAPI {
	bot, err := tgbotapi.NewBotAPI(telegramToken)
	if err != nil {
		misc.Fatal("tg_api", "telegram api", err)
	}
	misc.Info("authorized on account " + bot.Self.UserName)
	return bot
}
