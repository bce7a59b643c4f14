package repository

import (
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

const serviceColumns = `id, family_id, caregiver_id, service_type,
	patient_name, patient_age, patient_condition, patient_special_needs,
	location_lat, location_lng, address, scheduled_date, duration, notes, status,
	amount, commission_family, commission_caregiver, net_amount, payment_status,
	checkout_id, external_payment_ref, released_at,
	actual_start, actual_end, cancel_reason, version, created_at, updated_at`

const caregiverColumns = `id, user_id, name, email, phone, bio, location_lat, location_lng,
	service_radius, is_available, verification_status, specialties, hourly_rate,
	rating, total_reviews, total_services, created_at, updated_at`

const familyColumns = `id, user_id, name, email, phone, address, created_at, updated_at`

// PaymentRepo implements the payment repository interface
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}
