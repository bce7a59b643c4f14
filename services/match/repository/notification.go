package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// CreateNotification records an offer made to a caregiver
func (r *MatchRepo) CreateNotification(ctx context.Context, notification *models.ServiceNotification) error {
	query := `
		INSERT INTO service_notifications (
			id, service_id, caregiver_id, distance, channel, status, responded_at, version, created_at
		) VALUES (
			:id, :service_id, :caregiver_id, :distance, :channel, :status, :responded_at, :version, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, notification); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// UpdateNotificationChannel records how an offer actually reached the caregiver.
// The channel is not part of the offer lifecycle, so the version is left alone.
func (r *MatchRepo) UpdateNotificationChannel(ctx context.Context, notificationID string, channel models.NotificationChannel) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE service_notifications SET channel = $1 WHERE id = $2`,
		channel, notificationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update notification channel: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return models.ErrNotificationNotFound
	}
	return nil
}

// GetLatestNotification returns the most recent offer of a service to a caregiver
func (r *MatchRepo) GetLatestNotification(ctx context.Context, serviceID, caregiverID string) (*models.ServiceNotification, error) {
	var notification models.ServiceNotification
	query := `
		SELECT ` + notificationColumns + `
		FROM service_notifications
		WHERE service_id = $1 AND caregiver_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	if err := r.db.GetContext(ctx, &notification, query, serviceID, caregiverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return &notification, nil
}

// UpdateNotificationStatus stores a caregiver's answer guarded by the row version
func (r *MatchRepo) UpdateNotificationStatus(ctx context.Context, notification *models.ServiceNotification) error {
	if err := updateNotificationStatus(ctx, r.db, notification); err != nil {
		return err
	}
	notification.Version++
	return nil
}

func updateNotificationStatus(ctx context.Context, exec sqlx.ExecerContext, notification *models.ServiceNotification) error {
	query := `
		UPDATE service_notifications
		SET status = $1, responded_at = $2, version = version + 1
		WHERE id = $3 AND version = $4
	`
	result, err := exec.ExecContext(ctx, query,
		notification.Status, notification.RespondedAt, notification.ID, notification.Version)
	return expectOneRow(result, err, "notification")
}

type candidateRow struct {
	models.CaregiverDTO
	Distance    float64                   `db:"distance"`
	Status      models.NotificationStatus `db:"notification_status"`
	RespondedAt sql.NullTime              `db:"responded_at"`
}

// ListCandidates returns the caregivers interested in a service, nearest first
func (r *MatchRepo) ListCandidates(ctx context.Context, serviceID string) ([]*models.Candidate, error) {
	var rows []candidateRow
	query := `
		SELECT n.distance, n.status AS notification_status, n.responded_at, ` + prefixed("c", caregiverColumns) + `
		FROM service_notifications n
		JOIN caregivers c ON c.id = n.caregiver_id
		WHERE n.service_id = $1 AND n.status = 'interested'
		ORDER BY n.distance, n.responded_at
	`

	if err := r.db.SelectContext(ctx, &rows, query, serviceID); err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	candidates := make([]*models.Candidate, 0, len(rows))
	for i := range rows {
		candidate := &models.Candidate{
			Caregiver: rows[i].CaregiverDTO.ToCaregiver(),
			Distance:  rows[i].Distance,
			Status:    rows[i].Status,
		}
		if rows[i].RespondedAt.Valid {
			at := rows[i].RespondedAt.Time
			candidate.RespondedAt = &at
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

type offerRow struct {
	models.ServiceDTO
	NotificationID     string                    `db:"notification_id"`
	Distance           float64                   `db:"distance"`
	NotificationStatus models.NotificationStatus `db:"notification_status"`
	OfferedAt          time.Time                 `db:"offered_at"`
}

// ListOffersByCaregiver returns every offer made to a caregiver, newest first
func (r *MatchRepo) ListOffersByCaregiver(ctx context.Context, caregiverID string) ([]*models.Offer, error) {
	var rows []offerRow
	query := `
		SELECT n.id AS notification_id, n.distance, n.status AS notification_status,
			n.created_at AS offered_at, ` + prefixed("s", serviceColumns) + `
		FROM service_notifications n
		JOIN services s ON s.id = n.service_id
		WHERE n.caregiver_id = $1
		ORDER BY n.created_at DESC
	`

	if err := r.db.SelectContext(ctx, &rows, query, caregiverID); err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	offers := make([]*models.Offer, 0, len(rows))
	for i := range rows {
		offers = append(offers, &models.Offer{
			NotificationID: rows[i].NotificationID,
			Service:        rows[i].ServiceDTO.ToService(),
			Distance:       rows[i].Distance,
			Status:         rows[i].NotificationStatus,
			CreatedAt:      rows[i].OfferedAt,
		})
	}
	return offers, nil
}

// RecordInterest stores a caregiver's interest and moves a pending service to
// matched. The service version only moves when its status changes.
func (r *MatchRepo) RecordInterest(ctx context.Context, service *models.Service, notification *models.ServiceNotification) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := updateNotificationStatus(ctx, tx, notification); err != nil {
		return err
	}

	query := `
		UPDATE services SET
			status = 'matched',
			updated_at = CASE WHEN status = 'pending' THEN $2 ELSE updated_at END,
			version = CASE WHEN status = 'pending' THEN version + 1 ELSE version END
		WHERE id = $1 AND status IN ('pending', 'matched')
		RETURNING version
	`
	var version int
	if err := tx.QueryRowxContext(ctx, query, service.ID, service.UpdatedAt).Scan(&version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrServiceClosed
		}
		return fmt.Errorf("failed to mark service matched: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	notification.Version++
	service.Version = version
	return nil
}

// AssignCaregiver accepts the chosen offer, assigns the caregiver and declines
// every other interested caregiver of the service in one transaction
func (r *MatchRepo) AssignCaregiver(ctx context.Context, service *models.Service, notification *models.ServiceNotification) error {
	if service.CaregiverID == nil {
		return fmt.Errorf("%w: caregiver id is required", models.ErrValidation)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE services SET
			status = $1, caregiver_id = $2, updated_at = $3, version = version + 1
		WHERE id = $4 AND version = $5 AND status = 'matched'
	`, service.Status, *service.CaregiverID, service.UpdatedAt, service.ID, service.Version)
	if err := expectOneRow(result, err, "service"); err != nil {
		return err
	}

	if err := updateNotificationStatus(ctx, tx, notification); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE service_notifications
		SET status = 'declined', responded_at = $1, version = version + 1
		WHERE service_id = $2 AND id <> $3 AND status = 'interested'
	`, notification.RespondedAt, service.ID, notification.ID); err != nil {
		return fmt.Errorf("failed to decline other candidates: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	service.Version++
	notification.Version++
	return nil
}
