package gateway

import (
	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

// Notifier pushes realtime events to connected users
type Notifier interface {
	IsOnline(userID string) bool
	NotifyUser(userID, event string, data interface{}) error
}

// MailPublisher queues mail jobs
type MailPublisher interface {
	Publish(topic string, message interface{}) error
}

// EventPublisher publishes domain events
type EventPublisher interface {
	PublishJSON(subject string, v interface{}) error
}

// MatchGW delivers offers and lifecycle updates over the realtime channel,
// the mail queue and the event stream. The mail and event publishers are
// optional; a nil publisher drops the message with a warning.
type MatchGW struct {
	notifier  Notifier
	mail      MailPublisher
	events    EventPublisher
	mailTopic string
}

// NewMatchGW creates the match gateway
func NewMatchGW(cfg *models.Config, notifier Notifier, mail MailPublisher, events EventPublisher) *MatchGW {
	return &MatchGW{
		notifier:  notifier,
		mail:      mail,
		events:    events,
		mailTopic: cfg.NSQ.MailTopic,
	}
}
