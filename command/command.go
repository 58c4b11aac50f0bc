// Package command implements the telegram bot commands.
package command

import (
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rockrev/misc"
	"rockrev/service"
)

const startText = "Hi! To link your telegram to your account on the site, use:\n" +
	"/link [your email]\n\nExample: /link example@example.com"

// ExecCommand is exec command
func ExecCommand(users *service.Users, bot *tgbotapi.BotAPI, message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, "")
	switch message.Command() {
	case "start":
		msg.Text = startText
	case "link":
		email := strings.TrimSpace(message.CommandArguments())
		if email == "" {
			msg.Text = "Please provide your email, for example: /link example@example.com"
			break
		}
		user, err := users.LinkTelegram(email, message.Chat.ID)
		var notFound *service.NotFoundError
		var invalid *service.ValidationError
		switch {
		case errors.As(err, &notFound):
			msg.Text = "No account with that email was found. Please check the address."
		case errors.As(err, &invalid):
			msg.Text = invalid.Reason
		case err != nil:
			misc.Error("exec_command", "link", err)
			return
		default:
			msg.Text = "Telegram linked to your account: " + user.Username + "\n" +
				"Send /go to start receiving new release notifications."
		}
	case "go":
		linked, err := users.Linked(message.Chat.ID)
		if err != nil {
			misc.Error("exec_command", "go", err)
			return
		}
		if linked {
			msg.Text = "You will get a notification whenever a band you follow releases a new title."
		} else {
			msg.Text = "This chat is not linked yet. Use /link [your email] first."
		}
	default:
		return
	}
	if len(msg.Text) > 0 {
		_, err := bot.Send(msg)
		if err != nil {
			misc.Error("exec_command", "send message", err)
		}
	}
}

// Listen handles bot updates until the updates channel closes
func Listen(users *service.Users, bot *tgbotapi.BotAPI) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	for update := range bot.GetUpdatesChan(updateConfig) {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		ExecCommand(users, bot, update.Message)
	}
}
