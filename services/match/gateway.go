package match

import (
	"context"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Juankcba/choapp-back/services/match MatchGW,PaymentGW

// MatchGW defines the delivery channels used by the match service
type MatchGW interface {
	IsOnline(userID string) bool
	PushToUser(ctx context.Context, userID, event string, payload interface{}) error
	EnqueueMail(ctx context.Context, job models.MailJob) error
	PublishEvent(ctx context.Context, subject string, event models.DomainEvent) error
}

// PaymentGW is the payment side of the lifecycle
type PaymentGW interface {
	CreateCheckout(ctx context.Context, actor models.Actor, serviceID string) (*models.CheckoutSession, error)
	ReleasePayment(ctx context.Context, serviceID string) error
}
