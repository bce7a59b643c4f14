package payment

import (
	"context"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Juankcba/choapp-back/services/payment PaymentUC

// PaymentUC defines the escrow payment flow of a service
type PaymentUC interface {
	CreateCheckout(ctx context.Context, actor models.Actor, serviceID string) (*models.CheckoutSession, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	ReleasePayment(ctx context.Context, serviceID string) error
	GetPaymentStatus(ctx context.Context, actor models.Actor, serviceID string) (*models.PaymentStatusResponse, error)
	ConfirmPayment(ctx context.Context, actor models.Actor, serviceID string) (*models.PaymentStatusResponse, error)
	GetPaymentHistory(ctx context.Context, actor models.Actor) ([]*models.PaymentHistoryEntry, error)
}
