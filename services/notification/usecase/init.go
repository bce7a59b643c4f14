package usecase

import (
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/services/notification"
)

// NotificationUC implements the notification use case interface
type NotificationUC struct {
	cfg        *models.Config
	mailSender notification.MailSender
}

// NewNotificationUC creates a new notification use case
func NewNotificationUC(cfg *models.Config, mailSender notification.MailSender) *NotificationUC {
	return &NotificationUC{
		cfg:        cfg,
		mailSender: mailSender,
	}
}
