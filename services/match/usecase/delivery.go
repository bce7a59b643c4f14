package usecase

import (
	"context"
	"encoding/json"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

// Delivery failures are logged and never returned to the caller.

// push sends a realtime event when the user is online and reports whether it went out
func (uc *MatchUC) push(ctx context.Context, userID, event string, payload interface{}) bool {
	if userID == "" || !uc.matchGW.IsOnline(userID) {
		return false
	}
	return uc.pushOnline(ctx, userID, event, payload)
}

// pushOnline sends a realtime event to a user already known to be online
func (uc *MatchUC) pushOnline(ctx context.Context, userID, event string, payload interface{}) bool {
	if err := uc.matchGW.PushToUser(ctx, userID, event, payload); err != nil {
		logger.WarnCtx(ctx, "Failed to push realtime event",
			logger.UserID(userID),
			logger.String("event", event),
			logger.Err(err))
		return false
	}
	return true
}

func (uc *MatchUC) mail(ctx context.Context, job models.MailJob) bool {
	if job.To == "" {
		return false
	}
	if err := uc.matchGW.EnqueueMail(ctx, job); err != nil {
		logger.WarnCtx(ctx, "Failed to enqueue mail",
			logger.String("template", job.Template),
			logger.Err(err))
		return false
	}
	return true
}

func (uc *MatchUC) publish(ctx context.Context, subject, userID, serviceID string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to marshal event payload",
			logger.String("subject", subject),
			logger.Err(err))
		return
	}

	event := models.DomainEvent{
		Type:       subject,
		UserID:     userID,
		ServiceID:  serviceID,
		Data:       data,
		OccurredAt: models.Now(),
	}
	if err := uc.matchGW.PublishEvent(ctx, subject, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish domain event",
			logger.String("subject", subject),
			logger.ServiceID(serviceID),
			logger.Err(err))
	}
}

func (uc *MatchUC) statusPayload(service *models.Service, familyID, caregiverID string) models.ServiceStatusPayload {
	return models.ServiceStatusPayload{
		ServiceID:   service.ID,
		ServiceName: service.ServiceType.DisplayName(),
		Status:      service.Status,
		FamilyID:    familyID,
		CaregiverID: caregiverID,
		Address:     service.Address,
		At:          service.UpdatedAt,
	}
}

func patientName(service *models.Service) string {
	if service.Patient.Name == "" {
		return "No especificado"
	}
	return service.Patient.Name
}
