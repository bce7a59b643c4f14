package usecase

import (
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/internal/pkg/retry"
	"github.com/Juankcba/choapp-back/services/payment"
)

// DefaultCommissionRate is charged to each side when none is configured
const DefaultCommissionRate = 0.10

// PaymentUC implements the payment use case interface
type PaymentUC struct {
	cfg         *models.Config
	paymentRepo payment.PaymentRepo
	checkoutGW  payment.CheckoutGW
	notifyGW    payment.NotifyGW
	retrier     *retry.Retrier
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	paymentRepo payment.PaymentRepo,
	checkoutGW payment.CheckoutGW,
	notifyGW payment.NotifyGW,
) *PaymentUC {
	return &PaymentUC{
		cfg:         cfg,
		paymentRepo: paymentRepo,
		checkoutGW:  checkoutGW,
		notifyGW:    notifyGW,
		retrier: retry.New(retry.Config{
			MaxRetries:    2,
			BaseDelay:     20 * time.Millisecond,
			MaxDelay:      200 * time.Millisecond,
			RetryableFunc: retryOnConflict,
		}),
	}
}

func (uc *PaymentUC) commissionRate() float64 {
	if uc.cfg.Payment.CommissionRate > 0 {
		return uc.cfg.Payment.CommissionRate
	}
	return DefaultCommissionRate
}
