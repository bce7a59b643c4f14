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

// CreateService inserts a new service
func (r *MatchRepo) CreateService(ctx context.Context, service *models.Service) error {
	query := `
		INSERT INTO services (
			id, family_id, caregiver_id, service_type,
			patient_name, patient_age, patient_condition, patient_special_needs,
			location_lat, location_lng, address, scheduled_date, duration, notes, status,
			amount, commission_family, commission_caregiver, net_amount, payment_status,
			checkout_id, external_payment_ref, released_at,
			actual_start, actual_end, cancel_reason, version, created_at, updated_at
		) VALUES (
			:id, :family_id, :caregiver_id, :service_type,
			:patient_name, :patient_age, :patient_condition, :patient_special_needs,
			:location_lat, :location_lng, :address, :scheduled_date, :duration, :notes, :status,
			:amount, :commission_family, :commission_caregiver, :net_amount, :payment_status,
			:checkout_id, :external_payment_ref, :released_at,
			:actual_start, :actual_end, :cancel_reason, :version, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, service.ToDTO()); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

// GetService retrieves a service by ID
func (r *MatchRepo) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
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

// ListServicesByFamily returns a family's services, newest first
func (r *MatchRepo) ListServicesByFamily(ctx context.Context, familyID string) ([]*models.Service, error) {
	var dtos []models.ServiceDTO
	query := `SELECT ` + serviceColumns + ` FROM services WHERE family_id = $1 ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &dtos, query, familyID); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return toServices(dtos), nil
}

// ListActiveServices returns every service not yet completed or cancelled, newest first
func (r *MatchRepo) ListActiveServices(ctx context.Context) ([]*models.Service, error) {
	var dtos []models.ServiceDTO
	query := `SELECT ` + serviceColumns + ` FROM services
		WHERE status IN ('pending', 'matched', 'accepted', 'in_progress')
		ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, fmt.Errorf("failed to list active services: %w", err)
	}
	return toServices(dtos), nil
}

// UpdateServiceDetails stores the editable fields of a pending service
func (r *MatchRepo) UpdateServiceDetails(ctx context.Context, service *models.Service) error {
	query := `
		UPDATE services SET
			patient_name = $1, patient_age = $2, patient_condition = $3, patient_special_needs = $4,
			address = $5, scheduled_date = $6, duration = $7, notes = $8,
			updated_at = $9, version = version + 1
		WHERE id = $10 AND version = $11 AND status = 'pending'
	`

	result, err := r.db.ExecContext(ctx, query,
		service.Patient.Name, service.Patient.Age, service.Patient.Condition, service.Patient.SpecialNeeds,
		service.Address, service.ScheduledDate, service.Duration, service.Notes,
		service.UpdatedAt, service.ID, service.Version,
	)
	if err := expectOneRow(result, err, "service"); err != nil {
		return err
	}
	service.Version++
	return nil
}

// UpdateServiceStatus applies a lifecycle transition guarded by the row version
func (r *MatchRepo) UpdateServiceStatus(ctx context.Context, service *models.Service) error {
	if err := updateServiceStatus(ctx, r.db, service); err != nil {
		return err
	}
	service.Version++
	return nil
}

func updateServiceStatus(ctx context.Context, exec sqlx.ExecerContext, service *models.Service) error {
	dto := service.ToDTO()
	query := `
		UPDATE services SET
			status = $1, caregiver_id = $2, actual_start = $3, actual_end = $4,
			cancel_reason = $5, updated_at = $6, version = version + 1
		WHERE id = $7 AND version = $8
	`

	result, err := exec.ExecContext(ctx, query,
		dto.Status, dto.CaregiverID, dto.ActualStart, dto.ActualEnd,
		dto.CancelReason, dto.UpdatedAt, dto.ID, dto.Version,
	)
	return expectOneRow(result, err, "service")
}

// DeletePendingService removes a pending service and its unanswered offers
func (r *MatchRepo) DeletePendingService(ctx context.Context, service *models.Service) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM service_notifications WHERE service_id = $1 AND status = 'pending'`,
		service.ID,
	); err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM services WHERE id = $1 AND version = $2 AND status = 'pending'`,
		service.ID, service.Version,
	)
	if err := expectOneRow(result, err, "service"); err != nil {
		return err
	}

	return tx.Commit()
}

// ListUnderNotifiedServices returns pending services created in [since, before)
// that have fewer than minNotifications offer rows
func (r *MatchRepo) ListUnderNotifiedServices(ctx context.Context, since, before time.Time, minNotifications int) ([]*models.Service, error) {
	var dtos []models.ServiceDTO
	query := `
		SELECT ` + serviceColumns + `
		FROM services s
		WHERE s.status = 'pending'
			AND s.created_at >= $1
			AND s.created_at < $2
			AND (SELECT COUNT(*) FROM service_notifications n WHERE n.service_id = s.id) < $3
		ORDER BY s.created_at
	`

	if err := r.db.SelectContext(ctx, &dtos, query, since, before, minNotifications); err != nil {
		return nil, fmt.Errorf("failed to list under-notified services: %w", err)
	}
	return toServices(dtos), nil
}

// CompleteService marks the service completed and bumps the caregiver's counter
func (r *MatchRepo) CompleteService(ctx context.Context, service *models.Service) error {
	if service.CaregiverID == nil {
		return fmt.Errorf("%w: completed service needs a caregiver", models.ErrInvalidState)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := updateServiceStatus(ctx, tx, service); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE caregivers SET total_services = total_services + 1, updated_at = $1 WHERE id = $2`,
		service.UpdatedAt, *service.CaregiverID,
	); err != nil {
		return fmt.Errorf("failed to update caregiver counters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	service.Version++
	return nil
}

func toServices(dtos []models.ServiceDTO) []*models.Service {
	services := make([]*models.Service, 0, len(dtos))
	for i := range dtos {
		services = append(services, dtos[i].ToService())
	}
	return services
}
