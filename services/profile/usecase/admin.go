package usecase

import (
	"context"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

// ListPendingCaregivers returns the caregivers waiting for verification
func (uc *ProfileUC) ListPendingCaregivers(ctx context.Context) ([]*models.Caregiver, error) {
	return uc.profileRepo.ListCaregiversByVerification(ctx, models.VerificationPending)
}

// VerifyCaregiver records the admin decision on a caregiver profile
func (uc *ProfileUC) VerifyCaregiver(ctx context.Context, caregiverID string, status models.VerificationStatus) (*models.Caregiver, error) {
	if status != models.VerificationVerified && status != models.VerificationRejected {
		return nil, fmt.Errorf("%w: status must be verified or rejected", models.ErrValidation)
	}

	caregiver, err := uc.profileRepo.GetCaregiver(ctx, caregiverID)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	if err := uc.profileRepo.UpdateVerification(ctx, caregiverID, status, now); err != nil {
		return nil, err
	}
	caregiver.VerificationStatus = status
	caregiver.UpdatedAt = now

	logger.InfoCtx(ctx, "Caregiver verification updated",
		logger.CaregiverID(caregiverID),
		logger.String("status", string(status)))
	return caregiver, nil
}

// GetStats summarizes marketplace activity
func (uc *ProfileUC) GetStats(ctx context.Context) (*models.AdminStats, error) {
	stats, err := uc.profileRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	if uc.presenceGW != nil {
		stats.OnlineUsers = uc.presenceGW.OnlineCount()
	}
	return stats, nil
}
