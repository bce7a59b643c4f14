package nsq

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Juankcba/choapp-back/internal/pkg/constants"
	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	nsqpkg "github.com/Juankcba/choapp-back/internal/pkg/nsq"
	"github.com/Juankcba/choapp-back/services/notification"
	"github.com/Juankcba/choapp-back/services/notification/usecase"
)

// MailHandler consumes queued mail jobs
type MailHandler struct {
	notificationUC notification.NotificationUC
	cfg            *models.Config

	mu        sync.Mutex
	consumers []*nsqpkg.Consumer
}

// NewMailHandler creates a new mail consumer handler
func NewMailHandler(notificationUC notification.NotificationUC, cfg *models.Config) *MailHandler {
	return &MailHandler{
		notificationUC: notificationUC,
		cfg:            cfg,
	}
}

// InitNSQConsumers subscribes to the mail topic
func (h *MailHandler) InitNSQConsumers() error {
	topic := h.cfg.NSQ.MailTopic
	if topic == "" {
		topic = constants.TopicMailSend
	}
	channel := h.cfg.NSQ.MailChannel
	if channel == "" {
		channel = constants.ChannelMailer
	}

	consumer, err := nsqpkg.NewConsumer(topic, channel, h.cfg.NSQ.NSQDAddress, h.HandleMessage)
	if err != nil {
		return fmt.Errorf("failed to initialize mail consumer: %w", err)
	}

	h.mu.Lock()
	h.consumers = append(h.consumers, consumer)
	h.mu.Unlock()

	logger.Info("Mail consumer started",
		logger.String("topic", topic),
		logger.String("channel", channel))
	return nil
}

// Stop drains and stops every consumer
func (h *MailHandler) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.consumers {
		c.Stop()
	}
	h.consumers = nil
}

// HandleMessage delivers one mail job. Malformed jobs and unknown templates
// are dropped, provider failures are returned so NSQ requeues the message.
func (h *MailHandler) HandleMessage(body []byte) error {
	var job models.MailJob
	if err := nsqpkg.UnmarshalMessage(body, &job); err != nil {
		logger.Error("Dropping malformed mail job", logger.Err(err))
		return nil
	}

	err := h.notificationUC.DeliverMail(context.Background(), job)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrUnknownTemplate), errors.Is(err, models.ErrValidation):
		logger.Error("Dropping undeliverable mail job",
			logger.String("template", job.Template),
			logger.Err(err))
		return nil
	default:
		return err
	}
}
