package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Juankcba/choapp-back/internal/pkg/constants"
	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/google/uuid"
)

// CreateService stores a new pending service and fans it out in the background
func (uc *MatchUC) CreateService(ctx context.Context, userID string, req *models.CreateServiceRequest) (*models.Service, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	family, err := uc.matchRepo.GetFamilyByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	service := &models.Service{
		ID:            uuid.New().String(),
		FamilyID:      family.ID,
		ServiceType:   req.ServiceType,
		Patient:       req.Patient,
		Location:      req.Location,
		Address:       strings.TrimSpace(req.Address),
		ScheduledDate: req.ScheduledDate.UTC(),
		Duration:      req.Duration,
		Notes:         req.Notes,
		Status:        models.ServiceStatusPending,
		Payment:       models.ServicePayment{Status: models.PaymentStatusUnpaid},
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.matchRepo.CreateService(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	logger.InfoCtx(ctx, "Service created",
		logger.ServiceID(service.ID),
		logger.FamilyID(family.ID),
		logger.String("service_type", string(service.ServiceType)))

	serviceID := service.ID
	uc.tasks.Submit("notify-nearby-caregivers", func(ctx context.Context) error {
		_, err := uc.NotifyNearbyCaregivers(ctx, serviceID)
		return err
	})

	return service, nil
}

func validateCreate(req *models.CreateServiceRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", models.ErrValidation)
	}
	if !req.ServiceType.IsValid() {
		return models.ErrInvalidServiceType
	}
	if req.Location != nil && !req.Location.IsValid() {
		return models.ErrInvalidLocation
	}
	if req.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", models.ErrValidation)
	}
	if req.ScheduledDate.IsZero() {
		return fmt.Errorf("%w: scheduled date is required", models.ErrValidation)
	}
	return nil
}

// GetService returns a service visible to the caller. Families see their own
// services, caregivers the ones offered or assigned to them, admins everything.
func (uc *MatchUC) GetService(ctx context.Context, actor models.Actor, serviceID string) (*models.Service, error) {
	service, err := uc.matchRepo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case constants.RoleAdmin:
		return service, nil
	case constants.RoleFamily:
		if _, err := uc.ownedService(ctx, actor.UserID, service); err != nil {
			return nil, err
		}
		return service, nil
	case constants.RoleCaregiver:
		caregiver, err := uc.matchRepo.GetCaregiverByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if service.IsAssignedTo(caregiver.ID) {
			return service, nil
		}
		if _, err := uc.matchRepo.GetLatestNotification(ctx, service.ID, caregiver.ID); err != nil {
			return nil, models.ErrNotAssigned
		}
		return service, nil
	}

	return nil, models.ErrForbidden
}

// ListFamilyServices returns the caller's services, newest first
func (uc *MatchUC) ListFamilyServices(ctx context.Context, userID string) ([]*models.Service, error) {
	family, err := uc.matchRepo.GetFamilyByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.matchRepo.ListServicesByFamily(ctx, family.ID)
}

// ListActiveServices gives admins every service still in flight
func (uc *MatchUC) ListActiveServices(ctx context.Context) ([]*models.Service, error) {
	return uc.matchRepo.ListActiveServices(ctx)
}

// UpdateService edits a pending service owned by the caller
func (uc *MatchUC) UpdateService(ctx context.Context, userID, serviceID string, req *models.UpdateServiceRequest) (*models.Service, error) {
	service, err := uc.matchRepo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.ownedService(ctx, userID, service); err != nil {
		return nil, err
	}
	if service.Status != models.ServiceStatusPending {
		return nil, models.ErrServiceNotPending
	}

	if req.Patient != nil {
		service.Patient = *req.Patient
	}
	if req.Address != nil {
		service.Address = strings.TrimSpace(*req.Address)
	}
	if req.ScheduledDate != nil {
		if req.ScheduledDate.IsZero() {
			return nil, fmt.Errorf("%w: scheduled date is required", models.ErrValidation)
		}
		service.ScheduledDate = req.ScheduledDate.UTC()
	}
	if req.Duration != nil {
		if *req.Duration <= 0 {
			return nil, fmt.Errorf("%w: duration must be positive", models.ErrValidation)
		}
		service.Duration = *req.Duration
	}
	if req.Notes != nil {
		service.Notes = *req.Notes
	}
	service.UpdatedAt = models.Now()

	if err := uc.matchRepo.UpdateServiceDetails(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// DeleteService removes a pending service together with its pending offers
func (uc *MatchUC) DeleteService(ctx context.Context, userID, serviceID string) error {
	service, err := uc.matchRepo.GetService(ctx, serviceID)
	if err != nil {
		return err
	}
	if _, err := uc.ownedService(ctx, userID, service); err != nil {
		return err
	}
	if service.Status != models.ServiceStatusPending {
		return models.ErrServiceNotPending
	}

	if err := uc.matchRepo.DeletePendingService(ctx, service); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Service deleted", logger.ServiceID(serviceID))
	return nil
}

// CancelService moves a non-terminal service to cancelled. The owning family
// or an admin may cancel; an assigned caregiver is told about it.
func (uc *MatchUC) CancelService(ctx context.Context, actor models.Actor, serviceID, reason string) (*models.Service, error) {
	service, err := uc.matchRepo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	var family *models.Family
	if actor.IsAdmin() {
		family, err = uc.matchRepo.GetFamily(ctx, service.FamilyID)
	} else {
		family, err = uc.ownedService(ctx, actor.UserID, service)
	}
	if err != nil {
		return nil, err
	}

	if service.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: service is %s", models.ErrInvalidState, service.Status)
	}

	previousCaregiver := service.CaregiverID
	service.Status = models.ServiceStatusCancelled
	service.CaregiverID = nil
	service.CancelReason = strings.TrimSpace(reason)
	service.UpdatedAt = models.Now()

	if err := uc.matchRepo.UpdateServiceStatus(ctx, service); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Service cancelled",
		logger.ServiceID(service.ID),
		logger.String("reason", service.CancelReason))

	payload := uc.statusPayload(service, family.ID, "")
	if previousCaregiver != nil {
		payload.CaregiverID = *previousCaregiver
		if caregiver, err := uc.matchRepo.GetCaregiver(ctx, *previousCaregiver); err != nil {
			logger.WarnCtx(ctx, "Failed to load caregiver of cancelled service",
				logger.ServiceID(service.ID), logger.Err(err))
		} else {
			uc.push(ctx, caregiver.UserID, constants.EventServiceCancelled, payload)
		}
	}
	uc.publish(ctx, constants.SubjectServiceCancelled, family.UserID, service.ID, payload)

	return service, nil
}

// ownedService returns the caller's family when it owns the service
func (uc *MatchUC) ownedService(ctx context.Context, userID string, service *models.Service) (*models.Family, error) {
	family, err := uc.matchRepo.GetFamilyByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if service.FamilyID != family.ID {
		return nil, models.ErrNotYourService
	}
	return family, nil
}
