package service

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"rockrev/entity"
	"rockrev/misc"
)

// Notifier delivers one message to one external chat identity
type Notifier interface {
	Deliver(chatID int64, text string) error
}

// Dispatcher fans a band release out to the band's followers. Delivery
// failures are logged and counted, never returned: a failed send must not
// fail the catalog write that triggered it.
type Dispatcher struct {
	db       *gorm.DB
	notifier Notifier
}

// NewDispatcher makes a dispatcher
func NewDispatcher(conn *gorm.DB, notifier Notifier) *Dispatcher {
	return &Dispatcher{db: conn, notifier: notifier}
}

// BandAddedToTitle notifies every follower of band with a linked chat
// identity about the new title. Followers without one are skipped.
func (d *Dispatcher) BandAddedToTitle(title entity.Title, band entity.Band) {
	followers, err := entity.FollowersWithTelegram(d.db, band.ID)
	if err != nil {
		misc.Error("notify_resolve", fmt.Sprintf("resolve followers of band %q", band.Name), err)
		return
	}
	text := fmt.Sprintf("New release from %s: %s", band.Name, title.Name)
	for _, follower := range followers {
		if follower.TelegramID == nil {
			continue
		}
		if err := d.notifier.Deliver(*follower.TelegramID, text); err != nil {
			misc.NotifyAttempts.With(prometheus.Labels{"result": "error"}).Inc()
			misc.Error("notify_deliver", fmt.Sprintf("deliver to %s", follower.Username), err)
			continue
		}
		misc.NotifyAttempts.With(prometheus.Labels{"result": "ok"}).Inc()
	}
}
