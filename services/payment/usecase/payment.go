package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/constants"
	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	paymentpkg "github.com/Juankcba/choapp-back/internal/pkg/payment"
)

func retryOnConflict(err error) bool {
	return errors.Is(err, models.ErrConflict)
}

// CreateCheckout prices an accepted service and opens a hosted checkout for
// the family that owns it
func (uc *PaymentUC) CreateCheckout(ctx context.Context, actor models.Actor, serviceID string) (*models.CheckoutSession, error) {
	service, err := uc.paymentRepo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	family, err := uc.payingFamily(ctx, actor, service)
	if err != nil {
		return nil, err
	}
	if service.Status != models.ServiceStatusAccepted || service.CaregiverID == nil {
		return nil, models.ErrServiceNotAccepted
	}
	switch service.Payment.Status {
	case models.PaymentStatusHeld, models.PaymentStatusReleased:
		return nil, fmt.Errorf("%w: service is already paid", models.ErrInvalidState)
	}

	caregiver, err := uc.paymentRepo.GetCaregiver(ctx, *service.CaregiverID)
	if err != nil {
		return nil, err
	}

	breakdown := models.CalculateBreakdown(caregiver.HourlyRate, service.Duration, uc.commissionRate())
	session, err := uc.checkoutGW.CreateCheckout(ctx, models.CheckoutRequest{
		ServiceID:   service.ID,
		FamilyEmail: family.Email,
		Description: fmt.Sprintf("%s - %d horas", service.ServiceType.DisplayName(), service.Duration),
		TotalAmount: breakdown.Total,
		Currency:    uc.cfg.Payment.Currency,
		SuccessURL:  uc.cfg.Payment.SuccessURL,
		CancelURL:   uc.cfg.Payment.CancelURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout: %w", err)
	}

	service.Payment.Amount = breakdown.Amount
	service.Payment.CommissionFamily = breakdown.CommissionFamily
	service.Payment.CommissionCaregiver = breakdown.CommissionCaregiver
	service.Payment.NetAmount = breakdown.NetAmount
	service.Payment.Status = models.PaymentStatusPending
	service.Payment.CheckoutID = session.ID
	service.UpdatedAt = models.Now()

	if err := uc.paymentRepo.SavePayment(ctx, service); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Checkout created",
		logger.ServiceID(service.ID),
		logger.String("checkout_id", session.ID),
		logger.Float64("total", breakdown.Total))
	return session, nil
}

// HandleWebhook verifies a provider callback and moves a paid checkout into escrow.
// Events the service does not act on are ignored.
func (uc *PaymentUC) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	completed, err := uc.checkoutGW.ParseWebhook(payload, signature)
	if errors.Is(err, paymentpkg.ErrUnhandledEvent) {
		return nil
	}
	if err != nil {
		return err
	}
	if completed.ServiceID == "" {
		return fmt.Errorf("%w: checkout carries no service reference", models.ErrValidation)
	}
	if !completed.Paid {
		logger.InfoCtx(ctx, "Checkout completed without payment",
			logger.ServiceID(completed.ServiceID),
			logger.String("checkout_id", completed.SessionID))
		return nil
	}

	_, err = uc.settle(ctx, completed)
	return err
}

// ConfirmPayment asks the provider for the checkout outcome when the webhook
// never arrived. A paid checkout moves into escrow exactly as the webhook would.
func (uc *PaymentUC) ConfirmPayment(ctx context.Context, actor models.Actor, serviceID string) (*models.PaymentStatusResponse, error) {
	service, err := uc.paymentRepo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.payingFamily(ctx, actor, service); err != nil {
		return nil, err
	}

	switch service.Payment.Status {
	case models.PaymentStatusHeld, models.PaymentStatusReleased:
		return statusResponse(service), nil
	}
	if service.Payment.CheckoutID == "" {
		return nil, fmt.Errorf("%w: service has no checkout to confirm", models.ErrInvalidState)
	}

	completed, err := uc.checkoutGW.GetCheckout(ctx, service.Payment.CheckoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up checkout: %w", err)
	}
	if !completed.Paid {
		logger.InfoCtx(ctx, "Checkout not paid yet",
			logger.ServiceID(service.ID),
			logger.String("checkout_id", service.Payment.CheckoutID))
		return statusResponse(service), nil
	}
	// the service the checkout was stored on wins over session metadata
	completed.ServiceID = service.ID

	held, err := uc.settle(ctx, completed)
	if err != nil {
		return nil, err
	}
	if held == nil {
		if held, err = uc.paymentRepo.GetService(ctx, serviceID); err != nil {
			return nil, err
		}
	}
	return statusResponse(held), nil
}

// settle holds a paid checkout in escrow and tells both parties. It returns
// nil when an earlier delivery already held the payment.
func (uc *PaymentUC) settle(ctx context.Context, completed *models.CheckoutCompleted) (*models.Service, error) {
	var service *models.Service
	if err := uc.retrier.Execute(ctx, "hold-payment", func(ctx context.Context) error {
		held, err := uc.holdPayment(ctx, completed)
		service = held
		return err
	}); err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}

	notice := paymentPayload(service)
	caregiver := uc.caregiverOf(ctx, service)
	family, err := uc.paymentRepo.GetFamily(ctx, service.FamilyID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load family for payment notice",
			logger.ServiceID(service.ID), logger.Err(err))
	}

	if family != nil {
		uc.push(ctx, family.UserID, constants.EventPaymentReceived, notice)
		uc.mail(ctx, models.MailJob{
			Template: models.MailPaymentReceived,
			To:       family.Email,
			Name:     family.Name,
			Data:     paymentMailData(service),
		})
	}
	if caregiver != nil {
		uc.push(ctx, caregiver.UserID, constants.EventPaymentReceived, notice)
	}
	uc.publish(ctx, constants.SubjectPaymentReceived, "", service.ID, notice)
	return service, nil
}

// holdPayment returns nil when the payment was already held
func (uc *PaymentUC) holdPayment(ctx context.Context, completed *models.CheckoutCompleted) (*models.Service, error) {
	service, err := uc.paymentRepo.GetService(ctx, completed.ServiceID)
	if err != nil {
		return nil, err
	}
	switch service.Payment.Status {
	case models.PaymentStatusHeld, models.PaymentStatusReleased:
		logger.InfoCtx(ctx, "Duplicate payment webhook ignored", logger.ServiceID(service.ID))
		return nil, nil
	}

	service.Payment.Status = models.PaymentStatusHeld
	service.Payment.ExternalRef = completed.PaymentRef
	if completed.SessionID != "" {
		service.Payment.CheckoutID = completed.SessionID
	}
	service.UpdatedAt = models.Now()

	if err := uc.paymentRepo.SavePayment(ctx, service); err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Payment held in escrow",
		logger.ServiceID(service.ID),
		logger.String("payment_ref", completed.PaymentRef))
	return service, nil
}

// ReleasePayment pays out a held payment once the service is completed
func (uc *PaymentUC) ReleasePayment(ctx context.Context, serviceID string) error {
	service, err := uc.paymentRepo.GetService(ctx, serviceID)
	if err != nil {
		return err
	}
	if service.Status != models.ServiceStatusCompleted {
		return models.ErrServiceNotCompleted
	}
	if service.Payment.Status != models.PaymentStatusHeld {
		return models.ErrPaymentNotHeld
	}

	now := models.Now()
	service.Payment.Status = models.PaymentStatusReleased
	service.Payment.ReleasedAt = &now
	service.UpdatedAt = now

	if err := uc.paymentRepo.SavePayment(ctx, service); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Payment released",
		logger.ServiceID(service.ID),
		logger.Float64("net_amount", service.Payment.NetAmount))

	payload := paymentPayload(service)
	if caregiver := uc.caregiverOf(ctx, service); caregiver != nil {
		uc.push(ctx, caregiver.UserID, constants.EventPaymentReleased, payload)
		uc.mail(ctx, models.MailJob{
			Template: models.MailPaymentReleased,
			To:       caregiver.Email,
			Name:     caregiver.Name,
			Data:     paymentMailData(service),
		})
	}
	uc.publish(ctx, constants.SubjectPaymentReleased, "", service.ID, payload)
	return nil
}

// GetPaymentStatus returns the payment state of a service to its family,
// its assigned caregiver or an admin
func (uc *PaymentUC) GetPaymentStatus(ctx context.Context, actor models.Actor, serviceID string) (*models.PaymentStatusResponse, error) {
	service, err := uc.paymentRepo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if err := uc.authorize(ctx, actor, service); err != nil {
		return nil, err
	}

	return statusResponse(service), nil
}

func statusResponse(service *models.Service) *models.PaymentStatusResponse {
	return &models.PaymentStatusResponse{
		ServiceID:     service.ID,
		ServiceStatus: service.Status,
		Payment:       service.Payment,
		TotalCharged:  service.Payment.Amount + service.Payment.CommissionFamily,
	}
}

// payingFamily resolves the family charged for the service. Only that family,
// or an admin acting for it, may open a checkout.
func (uc *PaymentUC) payingFamily(ctx context.Context, actor models.Actor, service *models.Service) (*models.Family, error) {
	if actor.IsAdmin() {
		return uc.paymentRepo.GetFamily(ctx, service.FamilyID)
	}
	family, err := uc.paymentRepo.GetFamilyByUserID(ctx, actor.UserID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrNotYourService
	}
	if err != nil {
		return nil, err
	}
	if family.ID != service.FamilyID {
		return nil, models.ErrNotYourService
	}
	return family, nil
}

func (uc *PaymentUC) authorize(ctx context.Context, actor models.Actor, service *models.Service) error {
	if actor.IsAdmin() {
		return nil
	}

	family, err := uc.paymentRepo.GetFamilyByUserID(ctx, actor.UserID)
	if err == nil {
		if family.ID == service.FamilyID {
			return nil
		}
		return models.ErrNotYourService
	}
	if !errors.Is(err, models.ErrNotFound) {
		return err
	}

	caregiver, err := uc.paymentRepo.GetCaregiverByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotAssigned
		}
		return err
	}
	if !service.IsAssignedTo(caregiver.ID) {
		return models.ErrNotAssigned
	}
	return nil
}

func (uc *PaymentUC) caregiverOf(ctx context.Context, service *models.Service) *models.Caregiver {
	if service.CaregiverID == nil {
		return nil
	}
	caregiver, err := uc.paymentRepo.GetCaregiver(ctx, *service.CaregiverID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load caregiver for payment notice",
			logger.ServiceID(service.ID), logger.Err(err))
		return nil
	}
	return caregiver
}
