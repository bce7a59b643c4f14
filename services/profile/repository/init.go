package repository

import (
	"database/sql"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

const caregiverColumns = `id, user_id, name, email, phone, bio, location_lat, location_lng,
	service_radius, is_available, verification_status, specialties, hourly_rate,
	rating, total_reviews, total_services, created_at, updated_at`

const familyColumns = `id, user_id, name, email, phone, address, created_at, updated_at`

const serviceColumns = `id, family_id, caregiver_id, service_type,
	patient_name, patient_age, patient_condition, patient_special_needs,
	location_lat, location_lng, address, scheduled_date, duration, notes, status,
	amount, commission_family, commission_caregiver, net_amount, payment_status,
	checkout_id, external_payment_ref, released_at,
	actual_start, actual_end, cancel_reason, version, created_at, updated_at`

// ProfileRepo implements the profile repository interface
type ProfileRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(cfg *models.Config, db *sqlx.DB) *ProfileRepo {
	return &ProfileRepo{
		cfg: cfg,
		db:  db,
	}
}

func expectRow(result sql.Result, err error, notFound error) error {
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
