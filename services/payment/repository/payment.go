package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

// GetService retrieves a service by ID
func (r *PaymentRepo) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
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

// SavePayment stores the payment fields of a service guarded by its version
func (r *PaymentRepo) SavePayment(ctx context.Context, service *models.Service) error {
	dto := service.ToDTO()
	query := `
		UPDATE services SET
			amount = $1, commission_family = $2, commission_caregiver = $3, net_amount = $4,
			payment_status = $5, checkout_id = $6, external_payment_ref = $7, released_at = $8,
			updated_at = $9, version = version + 1
		WHERE id = $10 AND version = $11
	`

	result, err := r.db.ExecContext(ctx, query,
		dto.Amount, dto.CommissionFamily, dto.CommissionCaregiver, dto.NetAmount,
		dto.PaymentStatus, dto.CheckoutID, dto.ExternalPaymentRef, dto.ReleasedAt,
		dto.UpdatedAt, dto.ID, dto.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("payment: %w", models.ErrConflict)
	}

	service.Version++
	return nil
}

// GetCaregiver retrieves a caregiver by ID
func (r *PaymentRepo) GetCaregiver(ctx context.Context, caregiverID string) (*models.Caregiver, error) {
	return r.getCaregiver(ctx, `SELECT `+caregiverColumns+` FROM caregivers WHERE id = $1`, caregiverID)
}

// GetCaregiverByUserID retrieves the caregiver profile of a user
func (r *PaymentRepo) GetCaregiverByUserID(ctx context.Context, userID string) (*models.Caregiver, error) {
	return r.getCaregiver(ctx, `SELECT `+caregiverColumns+` FROM caregivers WHERE user_id = $1`, userID)
}

func (r *PaymentRepo) getCaregiver(ctx context.Context, query, arg string) (*models.Caregiver, error) {
	var dto models.CaregiverDTO
	if err := r.db.GetContext(ctx, &dto, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCaregiverNotFound
		}
		return nil, fmt.Errorf("failed to get caregiver: %w", err)
	}
	return dto.ToCaregiver(), nil
}

// GetFamily retrieves a family by ID
func (r *PaymentRepo) GetFamily(ctx context.Context, familyID string) (*models.Family, error) {
	return r.getFamily(ctx, `SELECT `+familyColumns+` FROM families WHERE id = $1`, familyID)
}

// GetFamilyByUserID retrieves the family profile of a user
func (r *PaymentRepo) GetFamilyByUserID(ctx context.Context, userID string) (*models.Family, error) {
	return r.getFamily(ctx, `SELECT `+familyColumns+` FROM families WHERE user_id = $1`, userID)
}

func (r *PaymentRepo) getFamily(ctx context.Context, query, arg string) (*models.Family, error) {
	var family models.Family
	if err := r.db.GetContext(ctx, &family, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrFamilyNotFound
		}
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	return &family, nil
}

// paymentHistoryFilter keeps services that carry payment activity or are
// accepted and waiting for it
const paymentHistoryFilter = `(payment_status IN ('pending', 'held', 'released') OR status = 'accepted')`

// ListPaymentHistoryByFamily returns the family's services with payment activity
func (r *PaymentRepo) ListPaymentHistoryByFamily(ctx context.Context, familyID string) ([]*models.Service, error) {
	return r.listHistory(ctx, `SELECT `+serviceColumns+` FROM services
		WHERE family_id = $1 AND `+paymentHistoryFilter+`
		ORDER BY updated_at DESC`, familyID)
}

// ListPaymentHistoryByCaregiver returns the caregiver's services with payment activity
func (r *PaymentRepo) ListPaymentHistoryByCaregiver(ctx context.Context, caregiverID string) ([]*models.Service, error) {
	return r.listHistory(ctx, `SELECT `+serviceColumns+` FROM services
		WHERE caregiver_id = $1 AND `+paymentHistoryFilter+`
		ORDER BY updated_at DESC`, caregiverID)
}

func (r *PaymentRepo) listHistory(ctx context.Context, query, arg string) ([]*models.Service, error) {
	var dtos []models.ServiceDTO
	if err := r.db.SelectContext(ctx, &dtos, query, arg); err != nil {
		return nil, fmt.Errorf("failed to list payment history: %w", err)
	}

	services := make([]*models.Service, 0, len(dtos))
	for i := range dtos {
		services = append(services, dtos[i].ToService())
	}
	return services, nil
}
