package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/google/uuid"
)

// ReviewService rates the caregiver of a completed service. Each service can be
// reviewed once and the caregiver's average is recomputed with the new rating.
func (uc *ProfileUC) ReviewService(ctx context.Context, userID, serviceID string, req *models.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", models.ErrValidation)
	}

	family, err := uc.profileRepo.GetFamilyByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	service, err := uc.profileRepo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service.FamilyID != family.ID {
		return nil, models.ErrNotYourService
	}
	if service.Status != models.ServiceStatusCompleted || service.CaregiverID == nil {
		return nil, models.ErrServiceNotCompleted
	}

	review := &models.Review{
		ID:          uuid.New().String(),
		ServiceID:   service.ID,
		FamilyID:    family.ID,
		CaregiverID: *service.CaregiverID,
		Rating:      req.Rating,
		Comment:     strings.TrimSpace(req.Comment),
		CreatedAt:   models.Now(),
	}

	caregiver, err := uc.profileRepo.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Service reviewed",
		logger.ServiceID(service.ID),
		logger.CaregiverID(caregiver.ID),
		logger.Int("rating", req.Rating),
		logger.Float64("caregiver_rating", caregiver.Rating))
	return review, nil
}

// ListCaregiverReviews returns the reviews shown on a caregiver's profile
func (uc *ProfileUC) ListCaregiverReviews(ctx context.Context, caregiverID string) ([]*models.CaregiverReview, error) {
	if _, err := uc.profileRepo.GetCaregiver(ctx, caregiverID); err != nil {
		return nil, err
	}
	return uc.profileRepo.ListReviewsByCaregiver(ctx, caregiverID)
}
