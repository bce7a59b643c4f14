package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

// GetCaregiver retrieves a caregiver by ID
func (r *ProfileRepo) GetCaregiver(ctx context.Context, caregiverID string) (*models.Caregiver, error) {
	return r.getCaregiver(ctx, `SELECT `+caregiverColumns+` FROM caregivers WHERE id = $1`, caregiverID)
}

// GetCaregiverByUserID retrieves the caregiver profile of a user
func (r *ProfileRepo) GetCaregiverByUserID(ctx context.Context, userID string) (*models.Caregiver, error) {
	return r.getCaregiver(ctx, `SELECT `+caregiverColumns+` FROM caregivers WHERE user_id = $1`, userID)
}

func (r *ProfileRepo) getCaregiver(ctx context.Context, query, arg string) (*models.Caregiver, error) {
	var dto models.CaregiverDTO
	if err := r.db.GetContext(ctx, &dto, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCaregiverNotFound
		}
		return nil, fmt.Errorf("failed to get caregiver: %w", err)
	}
	return dto.ToCaregiver(), nil
}

// CreateCaregiver inserts a new caregiver profile
func (r *ProfileRepo) CreateCaregiver(ctx context.Context, caregiver *models.Caregiver) error {
	query := `
		INSERT INTO caregivers (
			id, user_id, name, email, phone, bio, location_lat, location_lng,
			service_radius, is_available, verification_status, specialties, hourly_rate,
			rating, total_reviews, total_services, created_at, updated_at
		) VALUES (
			:id, :user_id, :name, :email, :phone, :bio, :location_lat, :location_lng,
			:service_radius, :is_available, :verification_status, :specialties, :hourly_rate,
			:rating, :total_reviews, :total_services, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, caregiver.ToDTO()); err != nil {
		return fmt.Errorf("failed to insert caregiver: %w", err)
	}
	return nil
}

// UpdateCaregiver stores the editable profile fields
func (r *ProfileRepo) UpdateCaregiver(ctx context.Context, caregiver *models.Caregiver) error {
	dto := caregiver.ToDTO()
	query := `
		UPDATE caregivers SET
			name = $1, phone = $2, bio = $3, service_radius = $4,
			specialties = $5, hourly_rate = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := r.db.ExecContext(ctx, query,
		dto.Name, dto.Phone, dto.Bio, dto.ServiceRadius,
		dto.Specialties, dto.HourlyRate, dto.UpdatedAt, dto.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update caregiver: %w", err)
	}
	return expectRow(result, nil, models.ErrCaregiverNotFound)
}

// UpdateCaregiverLocation stores the caregiver's position
func (r *ProfileRepo) UpdateCaregiverLocation(ctx context.Context, caregiverID string, location models.Location, at time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE caregivers SET location_lat = $1, location_lng = $2, updated_at = $3 WHERE id = $4`,
		location.Latitude, location.Longitude, at, caregiverID,
	)
	if err != nil {
		return fmt.Errorf("failed to update caregiver location: %w", err)
	}
	return expectRow(result, nil, models.ErrCaregiverNotFound)
}

// UpdateCaregiverAvailability toggles whether the caregiver receives offers
func (r *ProfileRepo) UpdateCaregiverAvailability(ctx context.Context, caregiverID string, available bool, at time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE caregivers SET is_available = $1, updated_at = $2 WHERE id = $3`,
		available, at, caregiverID,
	)
	if err != nil {
		return fmt.Errorf("failed to update caregiver availability: %w", err)
	}
	return expectRow(result, nil, models.ErrCaregiverNotFound)
}

// UpdateVerification stores the admin decision on a caregiver
func (r *ProfileRepo) UpdateVerification(ctx context.Context, caregiverID string, status models.VerificationStatus, at time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE caregivers SET verification_status = $1, updated_at = $2 WHERE id = $3`,
		status, at, caregiverID,
	)
	if err != nil {
		return fmt.Errorf("failed to update verification: %w", err)
	}
	return expectRow(result, nil, models.ErrCaregiverNotFound)
}

// ListCaregiversByVerification returns caregivers in the given review state, oldest first
func (r *ProfileRepo) ListCaregiversByVerification(ctx context.Context, status models.VerificationStatus) ([]*models.Caregiver, error) {
	var dtos []models.CaregiverDTO
	query := `SELECT ` + caregiverColumns + ` FROM caregivers WHERE verification_status = $1 ORDER BY created_at`

	if err := r.db.SelectContext(ctx, &dtos, query, status); err != nil {
		return nil, fmt.Errorf("failed to list caregivers: %w", err)
	}

	caregivers := make([]*models.Caregiver, 0, len(dtos))
	for i := range dtos {
		caregivers = append(caregivers, dtos[i].ToCaregiver())
	}
	return caregivers, nil
}
