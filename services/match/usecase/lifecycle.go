package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/constants"
	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

// RespondToService records a caregiver's interest in, or refusal of, an offer.
// Interest moves a pending service to matched and tells the family.
func (uc *MatchUC) RespondToService(ctx context.Context, userID, serviceID string, status models.NotificationStatus) (*models.ServiceNotification, error) {
	if !(models.RespondRequest{Status: status}).IsValid() {
		return nil, fmt.Errorf("%w: status must be interested or declined", models.ErrValidation)
	}

	caregiver, err := uc.matchRepo.GetCaregiverByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	service, err := uc.matchRepo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	notification, err := uc.matchRepo.GetLatestNotification(ctx, serviceID, caregiver.ID)
	if err != nil {
		return nil, err
	}

	if service.Status != models.ServiceStatusPending && service.Status != models.ServiceStatusMatched {
		return nil, models.ErrServiceClosed
	}
	if notification.Status == models.NotificationAccepted {
		return nil, models.ErrAlreadyResponded
	}

	now := models.Now()
	notification.Status = status
	notification.RespondedAt.Time = now
	notification.RespondedAt.Valid = true

	if status == models.NotificationDeclined {
		if err := uc.matchRepo.UpdateNotificationStatus(ctx, notification); err != nil {
			return nil, err
		}
		logger.InfoCtx(ctx, "Caregiver declined service",
			logger.ServiceID(serviceID), logger.CaregiverID(caregiver.ID))
		return notification, nil
	}

	service.Status = models.ServiceStatusMatched
	service.UpdatedAt = now
	if err := uc.matchRepo.RecordInterest(ctx, service, notification); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Caregiver interested in service",
		logger.ServiceID(serviceID), logger.CaregiverID(caregiver.ID))

	uc.announceInterest(ctx, service, caregiver, notification)
	return notification, nil
}

func (uc *MatchUC) announceInterest(ctx context.Context, service *models.Service, caregiver *models.Caregiver, notification *models.ServiceNotification) {
	family, err := uc.matchRepo.GetFamily(ctx, service.FamilyID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load family for interest notice",
			logger.ServiceID(service.ID), logger.Err(err))
		return
	}

	payload := models.CaregiverInterestedPayload{
		ServiceID:     service.ID,
		CaregiverID:   caregiver.ID,
		CaregiverName: caregiver.Name,
		Rating:        caregiver.Rating,
		Distance:      notification.Distance,
	}
	uc.push(ctx, family.UserID, constants.EventCaregiverInterested, payload)
	uc.mail(ctx, models.MailJob{
		Template: models.MailCaregiverInterested,
		To:       family.Email,
		Name:     family.Name,
		Data: map[string]string{
			"service_id":     service.ID,
			"service_type":   service.ServiceType.DisplayName(),
			"caregiver_name": caregiver.Name,
		},
	})
	uc.publish(ctx, constants.SubjectCaregiverInterested, family.UserID, service.ID, payload)
}

// ListCandidates returns the caregivers interested in the caller's service
func (uc *MatchUC) ListCandidates(ctx context.Context, userID, serviceID string) ([]*models.Candidate, error) {
	service, err := uc.matchRepo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.ownedService(ctx, userID, service); err != nil {
		return nil, err
	}
	return uc.matchRepo.ListCandidates(ctx, serviceID)
}

// SelectCaregiver assigns one of the offered caregivers to a matched service.
// Other interested caregivers are declined in the same transaction, then a
// checkout is opened for the family.
func (uc *MatchUC) SelectCaregiver(ctx context.Context, userID, serviceID, caregiverID string) (*models.SelectResult, error) {
	if caregiverID == "" {
		return nil, fmt.Errorf("%w: caregiver id is required", models.ErrValidation)
	}

	service, err := uc.matchRepo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	family, err := uc.ownedService(ctx, userID, service)
	if err != nil {
		return nil, err
	}
	if service.Status != models.ServiceStatusMatched {
		return nil, models.ErrServiceNotMatched
	}

	notification, err := uc.matchRepo.GetLatestNotification(ctx, serviceID, caregiverID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrNotACandidate
	}
	if err != nil {
		return nil, err
	}
	if notification.Status != models.NotificationInterested && notification.Status != models.NotificationPending {
		return nil, models.ErrNotACandidate
	}

	caregiver, err := uc.matchRepo.GetCaregiver(ctx, caregiverID)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	service.Status = models.ServiceStatusAccepted
	service.CaregiverID = &caregiverID
	service.UpdatedAt = now
	notification.Status = models.NotificationAccepted
	notification.RespondedAt.Time = now
	notification.RespondedAt.Valid = true

	if err := uc.matchRepo.AssignCaregiver(ctx, service, notification); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Caregiver selected",
		logger.ServiceID(serviceID),
		logger.CaregiverID(caregiverID),
		logger.FamilyID(family.ID))

	payload := uc.statusPayload(service, family.ID, caregiverID)
	uc.push(ctx, caregiver.UserID, constants.EventServiceConfirmed, payload)
	uc.mail(ctx, models.MailJob{
		Template: models.MailCaregiverSelected,
		To:       caregiver.Email,
		Name:     caregiver.Name,
		Data: map[string]string{
			"service_id":   service.ID,
			"service_type": service.ServiceType.DisplayName(),
			"patient_name": patientName(service),
			"family_name":  family.Name,
		},
	})
	uc.publish(ctx, constants.SubjectServiceConfirmed, caregiver.UserID, service.ID, payload)

	result := &models.SelectResult{Service: service}
	checkout, err := uc.paymentGW.CreateCheckout(ctx, models.Actor{UserID: userID, Role: constants.RoleFamily}, service.ID)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to create checkout for selected caregiver",
			logger.ServiceID(serviceID), logger.Err(err))
		return result, nil
	}
	result.Checkout = checkout

	// checkout stored payment fields and bumped the version
	if refreshed, err := uc.matchRepo.GetService(ctx, serviceID); err == nil {
		result.Service = refreshed
	}
	return result, nil
}

// StartService marks an accepted service as in progress
func (uc *MatchUC) StartService(ctx context.Context, userID, serviceID string) (*models.Service, error) {
	caregiver, service, err := uc.assignedService(ctx, userID, serviceID)
	if err != nil {
		return nil, err
	}
	if service.Status != models.ServiceStatusAccepted {
		return nil, models.ErrServiceNotAccepted
	}

	now := models.Now()
	service.Status = models.ServiceStatusInProgress
	service.ActualStart = &now
	service.UpdatedAt = now

	if err := uc.matchRepo.UpdateServiceStatus(ctx, service); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Service started",
		logger.ServiceID(serviceID), logger.CaregiverID(caregiver.ID))

	uc.notifyFamily(ctx, service, caregiver, constants.EventServiceStarted, constants.SubjectServiceStarted)
	return service, nil
}

// FinishService completes an in-progress service and releases its payment in the background
func (uc *MatchUC) FinishService(ctx context.Context, userID, serviceID string) (*models.Service, error) {
	caregiver, service, err := uc.assignedService(ctx, userID, serviceID)
	if err != nil {
		return nil, err
	}
	if service.Status != models.ServiceStatusInProgress {
		return nil, models.ErrServiceNotInProgress
	}
	if service.ActualEnd != nil {
		return nil, fmt.Errorf("%w: service already finished", models.ErrInvalidState)
	}

	now := models.Now()
	service.Status = models.ServiceStatusCompleted
	service.ActualEnd = &now
	service.UpdatedAt = now

	if err := uc.matchRepo.CompleteService(ctx, service); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Service completed",
		logger.ServiceID(serviceID), logger.CaregiverID(caregiver.ID))

	uc.notifyFamily(ctx, service, caregiver, constants.EventServiceCompleted, constants.SubjectServiceCompleted)

	uc.tasks.Submit("release-payment", func(ctx context.Context) error {
		return uc.paymentGW.ReleasePayment(ctx, serviceID)
	})

	return service, nil
}

// ListCaregiverOffers returns every offer made to the calling caregiver, newest first
func (uc *MatchUC) ListCaregiverOffers(ctx context.Context, userID string) ([]*models.Offer, error) {
	caregiver, err := uc.matchRepo.GetCaregiverByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.matchRepo.ListOffersByCaregiver(ctx, caregiver.ID)
}

// assignedService loads the caller's caregiver profile and a service assigned to it
func (uc *MatchUC) assignedService(ctx context.Context, userID, serviceID string) (*models.Caregiver, *models.Service, error) {
	caregiver, err := uc.matchRepo.GetCaregiverByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	service, err := uc.matchRepo.GetService(ctx, serviceID)
	if err != nil {
		return nil, nil, err
	}
	if !service.IsAssignedTo(caregiver.ID) {
		return nil, nil, models.ErrNotAssigned
	}
	return caregiver, service, nil
}

func (uc *MatchUC) notifyFamily(ctx context.Context, service *models.Service, caregiver *models.Caregiver, event, subject string) {
	family, err := uc.matchRepo.GetFamily(ctx, service.FamilyID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load family for status notice",
			logger.ServiceID(service.ID), logger.Err(err))
		return
	}
	payload := uc.statusPayload(service, family.ID, caregiver.ID)
	uc.push(ctx, family.UserID, event, payload)
	uc.publish(ctx, subject, family.UserID, service.ID, payload)
}
