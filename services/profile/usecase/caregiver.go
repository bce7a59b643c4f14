package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/google/uuid"
)

// GetMyCaregiver returns the caregiver profile of the calling user
func (uc *ProfileUC) GetMyCaregiver(ctx context.Context, userID string) (*models.Caregiver, error) {
	return uc.profileRepo.GetCaregiverByUserID(ctx, userID)
}

// UpsertMyCaregiver edits the caller's caregiver profile, creating it on first use.
// New profiles wait for admin verification before they receive offers.
func (uc *ProfileUC) UpsertMyCaregiver(ctx context.Context, userID, email string, req *models.UpdateCaregiverRequest) (*models.Caregiver, error) {
	if err := validateCaregiverUpdate(req); err != nil {
		return nil, err
	}

	caregiver, err := uc.profileRepo.GetCaregiverByUserID(ctx, userID)
	create := errors.Is(err, models.ErrNotFound)
	if err != nil && !create {
		return nil, err
	}

	now := models.Now()
	if create {
		caregiver = &models.Caregiver{
			ID:                 uuid.New().String(),
			UserID:             userID,
			Email:              email,
			ServiceRadius:      uc.defaultRadius(),
			IsAvailable:        true,
			VerificationStatus: models.VerificationPending,
			Specialties:        []models.ServiceType{},
			CreatedAt:          now,
		}
	}

	applyCaregiverUpdate(caregiver, req)
	caregiver.UpdatedAt = now

	if create {
		if err := uc.profileRepo.CreateCaregiver(ctx, caregiver); err != nil {
			return nil, err
		}
		logger.InfoCtx(ctx, "Caregiver profile created",
			logger.CaregiverID(caregiver.ID), logger.UserID(userID))
		return caregiver, nil
	}

	if err := uc.profileRepo.UpdateCaregiver(ctx, caregiver); err != nil {
		return nil, err
	}
	return caregiver, nil
}

// UpdateMyLocation stores the caregiver's current position
func (uc *ProfileUC) UpdateMyLocation(ctx context.Context, userID string, location models.Location) (*models.Caregiver, error) {
	if !location.IsValid() {
		return nil, models.ErrInvalidLocation
	}

	caregiver, err := uc.profileRepo.GetCaregiverByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	if err := uc.profileRepo.UpdateCaregiverLocation(ctx, caregiver.ID, location, now); err != nil {
		return nil, err
	}
	caregiver.Location = &location
	caregiver.UpdatedAt = now
	return caregiver, nil
}

// SetMyAvailability toggles whether the caregiver receives new offers
func (uc *ProfileUC) SetMyAvailability(ctx context.Context, userID string, available bool) (*models.Caregiver, error) {
	caregiver, err := uc.profileRepo.GetCaregiverByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	if err := uc.profileRepo.UpdateCaregiverAvailability(ctx, caregiver.ID, available, now); err != nil {
		return nil, err
	}
	caregiver.IsAvailable = available
	caregiver.UpdatedAt = now
	return caregiver, nil
}

func (uc *ProfileUC) defaultRadius() int {
	if uc.cfg.Match.DefaultRadiusMeters > 0 {
		return uc.cfg.Match.DefaultRadiusMeters
	}
	return models.DefaultServiceRadiusMeters
}

func validateCaregiverUpdate(req *models.UpdateCaregiverRequest) error {
	if req.ServiceRadius != nil && *req.ServiceRadius < 0 {
		return fmt.Errorf("%w: service radius cannot be negative", models.ErrValidation)
	}
	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		return fmt.Errorf("%w: hourly rate cannot be negative", models.ErrValidation)
	}
	for _, s := range req.Specialties {
		if !s.IsValid() {
			return fmt.Errorf("%w: %s", models.ErrInvalidServiceType, s)
		}
	}
	return nil
}

func applyCaregiverUpdate(c *models.Caregiver, req *models.UpdateCaregiverRequest) {
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Bio != nil {
		c.Bio = *req.Bio
	}
	if req.ServiceRadius != nil {
		c.ServiceRadius = *req.ServiceRadius
	}
	if req.Specialties != nil {
		c.Specialties = req.Specialties
	}
	if req.HourlyRate != nil {
		c.HourlyRate = *req.HourlyRate
	}
}
