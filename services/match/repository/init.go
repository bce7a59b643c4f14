package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Juankcba/choapp-back/internal/pkg/database"
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

const notificationColumns = `id, service_id, caregiver_id, distance, channel, status,
	responded_at, version, created_at`

// MatchRepo implements the match repository interface
type MatchRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *MatchRepo {
	return &MatchRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// prefixed qualifies every column of a list with a table alias
func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

// expectOneRow turns a compare-and-swap update that matched nothing into a conflict
func expectOneRow(result sql.Result, err error, what string) error {
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", what, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", what, models.ErrConflict)
	}
	return nil
}
