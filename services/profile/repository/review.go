package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

// GetService retrieves a service by ID
func (r *ProfileRepo) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	var dto models.ServiceDTO
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	if err := r.db.GetContext(ctx, &dto, query, serviceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return dto.ToService(), nil
}

// CreateReview stores a review and recomputes the caregiver's rating, rounded
// to one decimal, and review count. It returns the updated caregiver.
func (r *ProfileRepo) CreateReview(ctx context.Context, review *models.Review) (*models.Caregiver, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.NamedExecContext(ctx, `
		INSERT INTO reviews (id, service_id, family_id, caregiver_id, rating, comment, created_at)
		VALUES (:id, :service_id, :family_id, :caregiver_id, :rating, :comment, :created_at)
		ON CONFLICT (service_id) DO NOTHING
	`, review)
	if err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}
	if err := expectRow(result, nil, models.ErrAlreadyReviewed); err != nil {
		return nil, err
	}

	var dto models.CaregiverDTO
	if err := tx.GetContext(ctx, &dto, `
		UPDATE caregivers SET
			rating = (SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews WHERE caregiver_id = $1),
			total_reviews = (SELECT COUNT(*) FROM reviews WHERE caregiver_id = $1),
			updated_at = $2
		WHERE id = $1
		RETURNING `+caregiverColumns,
		review.CaregiverID, review.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCaregiverNotFound
		}
		return nil, fmt.Errorf("failed to update caregiver rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return dto.ToCaregiver(), nil
}

// ListReviewsByCaregiver returns a caregiver's reviews, newest first
func (r *ProfileRepo) ListReviewsByCaregiver(ctx context.Context, caregiverID string) ([]*models.CaregiverReview, error) {
	reviews := []*models.CaregiverReview{}
	query := `
		SELECT r.id, r.service_id, r.rating, r.comment, f.name AS family_name, r.created_at
		FROM reviews r
		JOIN families f ON f.id = r.family_id
		WHERE r.caregiver_id = $1
		ORDER BY r.created_at DESC`

	if err := r.db.SelectContext(ctx, &reviews, query, caregiverID); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// GetStats counts profiles, services and released revenue
func (r *ProfileRepo) GetStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	query := `
		SELECT
			(SELECT COUNT(*) FROM families) AS total_families,
			(SELECT COUNT(*) FROM caregivers) AS total_caregivers,
			(SELECT COUNT(*) FROM caregivers WHERE verification_status = 'pending') AS pending_caregivers,
			(SELECT COUNT(*) FROM services) AS total_services,
			(SELECT COUNT(*) FROM services WHERE status IN ('matched', 'accepted', 'in_progress')) AS active_services,
			(SELECT COUNT(*) FROM services WHERE status = 'completed') AS completed_services,
			(SELECT COALESCE(SUM(commission_family + commission_caregiver), 0)
				FROM services WHERE payment_status = 'released') AS total_revenue
	`

	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &stats, nil
}
