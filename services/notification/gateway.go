package notification

import (
	"context"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Juankcba/choapp-back/services/notification MailSender

// MailSender hands rendered mail to the email provider
type MailSender interface {
	Configured() bool
	Send(ctx context.Context, mail models.RenderedMail) (string, error)
}
