package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

// GetFamilyByUserID retrieves the family profile of a user
func (r *ProfileRepo) GetFamilyByUserID(ctx context.Context, userID string) (*models.Family, error) {
	var family models.Family
	query := `SELECT ` + familyColumns + ` FROM families WHERE user_id = $1`

	if err := r.db.GetContext(ctx, &family, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrFamilyNotFound
		}
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	return &family, nil
}

// UpsertFamily inserts a family profile or replaces the one owned by the same user
func (r *ProfileRepo) UpsertFamily(ctx context.Context, family *models.Family) error {
	query := `
		INSERT INTO families (id, user_id, name, email, phone, address, created_at, updated_at)
		VALUES (:id, :user_id, :name, :email, :phone, :address, :created_at, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name, email = EXCLUDED.email, phone = EXCLUDED.phone,
			address = EXCLUDED.address, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.NamedExecContext(ctx, query, family); err != nil {
		return fmt.Errorf("failed to upsert family: %w", err)
	}
	return nil
}
