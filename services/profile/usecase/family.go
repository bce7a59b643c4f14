package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/google/uuid"
)

// GetMyFamily returns the family profile of the calling user
func (uc *ProfileUC) GetMyFamily(ctx context.Context, userID string) (*models.Family, error) {
	return uc.profileRepo.GetFamilyByUserID(ctx, userID)
}

// UpsertMyFamily creates or replaces the caller's family profile
func (uc *ProfileUC) UpsertMyFamily(ctx context.Context, userID string, req *models.UpsertFamilyRequest) (*models.Family, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrValidation)
	}

	family, err := uc.profileRepo.GetFamilyByUserID(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		family = &models.Family{ID: uuid.New().String(), UserID: userID, CreatedAt: models.Now()}
	} else if err != nil {
		return nil, err
	}

	family.Name = req.Name
	family.Email = req.Email
	family.Phone = req.Phone
	family.Address = req.Address
	family.UpdatedAt = models.Now()

	if err := uc.profileRepo.UpsertFamily(ctx, family); err != nil {
		return nil, err
	}
	return family, nil
}
