package usecase

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

func (uc *PaymentUC) push(ctx context.Context, userID, event string, payload interface{}) {
	if userID == "" || !uc.notifyGW.IsOnline(userID) {
		return
	}
	if err := uc.notifyGW.PushToUser(ctx, userID, event, payload); err != nil {
		logger.WarnCtx(ctx, "Failed to push payment event",
			logger.UserID(userID),
			logger.String("event", event),
			logger.Err(err))
	}
}

func (uc *PaymentUC) mail(ctx context.Context, job models.MailJob) {
	if job.To == "" {
		return
	}
	if err := uc.notifyGW.EnqueueMail(ctx, job); err != nil {
		logger.WarnCtx(ctx, "Failed to enqueue payment mail",
			logger.String("template", job.Template),
			logger.Err(err))
	}
}

func (uc *PaymentUC) publish(ctx context.Context, subject, userID, serviceID string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to marshal event payload", logger.Err(err))
		return
	}
	event := models.DomainEvent{
		Type:       subject,
		UserID:     userID,
		ServiceID:  serviceID,
		Data:       data,
		OccurredAt: models.Now(),
	}
	if err := uc.notifyGW.PublishEvent(ctx, subject, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish payment event",
			logger.String("subject", subject),
			logger.Err(err))
	}
}

func paymentPayload(service *models.Service) models.PaymentPayload {
	return models.PaymentPayload{
		ServiceID: service.ID,
		Amount:    service.Payment.Amount,
		NetAmount: service.Payment.NetAmount,
		Status:    service.Payment.Status,
	}
}

func paymentMailData(service *models.Service) map[string]string {
	return map[string]string{
		"service_id":   service.ID,
		"service_type": service.ServiceType.DisplayName(),
		"amount":       strconv.FormatFloat(service.Payment.Amount, 'f', 2, 64),
		"net_amount":   strconv.FormatFloat(service.Payment.NetAmount, 'f', 2, 64),
	}
}
