package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

// GetThread loads both parties of the (service, caregiver) thread. The thread
// is open once the caregiver is assigned or has answered the offer with interest.
func (r *ChatRepo) GetThread(ctx context.Context, serviceID, caregiverID string) (*models.ChatThread, error) {
	var thread models.ChatThread
	query := `
		SELECT
			s.id AS service_id, s.service_type, s.status,
			f.user_id AS family_user_id, f.name AS family_name, f.email AS family_email,
			c.id AS caregiver_id, c.user_id AS caregiver_user_id, c.name AS caregiver_name, c.email AS caregiver_email,
			(COALESCE(s.caregiver_id = c.id, FALSE) OR EXISTS (
				SELECT 1 FROM service_notifications n
				WHERE n.service_id = s.id AND n.caregiver_id = c.id
					AND n.status IN ('interested', 'accepted')
			)) AS open
		FROM services s
		JOIN families f ON f.id = s.family_id
		JOIN caregivers c ON c.id = $2
		WHERE s.id = $1`

	if err := r.db.GetContext(ctx, &thread, query, serviceID, caregiverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.missingThread(ctx, serviceID)
		}
		return nil, fmt.Errorf("failed to get chat thread: %w", err)
	}
	return &thread, nil
}

// missingThread tells an unknown service apart from an unknown caregiver
func (r *ChatRepo) missingThread(ctx context.Context, serviceID string) error {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM services WHERE id = $1)`, serviceID); err != nil {
		return fmt.Errorf("failed to check service: %w", err)
	}
	if !exists {
		return models.ErrServiceNotFound
	}
	return models.ErrCaregiverNotFound
}
