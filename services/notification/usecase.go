package notification

import (
	"context"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Juankcba/choapp-back/services/notification NotificationUC

// NotificationUC turns queued mail jobs into delivered emails
type NotificationUC interface {
	DeliverMail(ctx context.Context, job models.MailJob) error
}
