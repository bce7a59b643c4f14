package payment

import (
	"context"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Juankcba/choapp-back/services/payment CheckoutGW,NotifyGW

// CheckoutGW is the hosted checkout provider
type CheckoutGW interface {
	CreateCheckout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
	ParseWebhook(payload []byte, signature string) (*models.CheckoutCompleted, error)
	GetCheckout(ctx context.Context, sessionID string) (*models.CheckoutCompleted, error)
}

// NotifyGW delivers payment updates to families and caregivers
type NotifyGW interface {
	IsOnline(userID string) bool
	PushToUser(ctx context.Context, userID, event string, payload interface{}) error
	EnqueueMail(ctx context.Context, job models.MailJob) error
	PublishEvent(ctx context.Context, subject string, event models.DomainEvent) error
}
