package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

// ListMatchableCaregivers returns every available, verified caregiver with a location
func (r *MatchRepo) ListMatchableCaregivers(ctx context.Context) ([]*models.Caregiver, error) {
	var dtos []models.CaregiverDTO
	query := `
		SELECT ` + caregiverColumns + `
		FROM caregivers
		WHERE is_available = TRUE
			AND verification_status = 'verified'
			AND location_lat IS NOT NULL
			AND location_lng IS NOT NULL
	`

	if err := r.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, fmt.Errorf("failed to list caregivers: %w", err)
	}

	caregivers := make([]*models.Caregiver, 0, len(dtos))
	for i := range dtos {
		caregivers = append(caregivers, dtos[i].ToCaregiver())
	}
	return caregivers, nil
}

// GetCaregiver retrieves a caregiver by ID
func (r *MatchRepo) GetCaregiver(ctx context.Context, caregiverID string) (*models.Caregiver, error) {
	return r.getCaregiver(ctx, `SELECT `+caregiverColumns+` FROM caregivers WHERE id = $1`, caregiverID)
}

// GetCaregiverByUserID retrieves the caregiver profile of a user
func (r *MatchRepo) GetCaregiverByUserID(ctx context.Context, userID string) (*models.Caregiver, error) {
	return r.getCaregiver(ctx, `SELECT `+caregiverColumns+` FROM caregivers WHERE user_id = $1`, userID)
}

func (r *MatchRepo) getCaregiver(ctx context.Context, query, arg string) (*models.Caregiver, error) {
	var dto models.CaregiverDTO
	if err := r.db.GetContext(ctx, &dto, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCaregiverNotFound
		}
		return nil, fmt.Errorf("failed to get caregiver: %w", err)
	}
	return dto.ToCaregiver(), nil
}

const familyColumns = `id, user_id, name, email, phone, address, created_at, updated_at`

// GetFamily retrieves a family by ID
func (r *MatchRepo) GetFamily(ctx context.Context, familyID string) (*models.Family, error) {
	return r.getFamily(ctx, `SELECT `+familyColumns+` FROM families WHERE id = $1`, familyID)
}

// GetFamilyByUserID retrieves the family profile of a user
func (r *MatchRepo) GetFamilyByUserID(ctx context.Context, userID string) (*models.Family, error) {
	return r.getFamily(ctx, `SELECT `+familyColumns+` FROM families WHERE user_id = $1`, userID)
}

func (r *MatchRepo) getFamily(ctx context.Context, query, arg string) (*models.Family, error) {
	var family models.Family
	if err := r.db.GetContext(ctx, &family, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrFamilyNotFound
		}
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	return &family, nil
}
