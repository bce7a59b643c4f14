package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var threadCols = []string{
	"service_id", "service_type", "status",
	"family_user_id", "family_name", "family_email",
	"caregiver_id", "caregiver_user_id", "caregiver_name", "caregiver_email",
	"open",
}

func setupMockDB(t *testing.T) (*ChatRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return &ChatRepo{cfg: &models.Config{}, db: sqlx.NewDb(mockDB, "sqlmock")}, mock
}

func TestGetThread(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN caregivers c ON c.id = $2")).
		WithArgs("svc", "cg-1").
		WillReturnRows(sqlmock.NewRows(threadCols).AddRow(
			"svc", "companionship", "matched",
			"user-family-1", "Pérez", "perez@example.com",
			"cg-1", "user-cg-1", "Ana", "ana@example.com",
			true,
		))

	thread, err := repo.GetThread(context.Background(), "svc", "cg-1")
	require.NoError(t, err)
	assert.True(t, thread.Open)
	assert.Equal(t, models.ServiceStatusMatched, thread.ServiceStatus)

	sender, recipient, ok := thread.Parties("user-cg-1")
	require.True(t, ok)
	assert.Equal(t, "caregiver", sender.Role)
	assert.Equal(t, "perez@example.com", recipient.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetThread_Missing(t *testing.T) {
	t.Run("unknown service", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM services s")).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM services WHERE id = $1)")).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := repo.GetThread(context.Background(), "missing", "cg-1")
		assert.ErrorIs(t, err, models.ErrServiceNotFound)
	})

	t.Run("unknown caregiver", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM services s")).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
			WithArgs("svc").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		_, err := repo.GetThread(context.Background(), "svc", "nobody")
		assert.ErrorIs(t, err, models.ErrCaregiverNotFound)
	})
}
