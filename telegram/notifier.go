package telegram

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotNotifier sends notifications through the bot, bounding each send so a
// hung delivery cannot stall the whole fan-out
type BotNotifier struct {
	Bot     *tgbotapi.BotAPI
	Timeout time.Duration
}

// Deliver sends one message to one chat
func (n *BotNotifier) Deliver(chatID int64, text string) error {
	done := make(chan error, 1)
	go func() {
		_, err := n.Bot.Send(tgbotapi.NewMessage(chatID, text))
		done <- err
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(n.Timeout):
		return fmt.Errorf("delivery to chat %d timed out after %s", chatID, n.Timeout)
	}
}

// NopNotifier drops notifications; used when no telegram token is configured
type NopNotifier struct{}

// Deliver does nothing
func (NopNotifier) Deliver(int64, string) error {
	return nil
}
