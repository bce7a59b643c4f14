package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var caregiverCols = []string{
	"id", "user_id", "name", "email", "phone", "bio", "location_lat", "location_lng",
	"service_radius", "is_available", "verification_status", "specialties", "hourly_rate",
	"rating", "total_reviews", "total_services", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*ProfileRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewProfileRepository(&models.Config{}, sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestCreateReview_RecomputesRating(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Date(2026, 10, 3, 18, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reviews")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("ROUND(AVG(rating)::numeric, 1)")).
		WithArgs("cg-1", now).
		WillReturnRows(sqlmock.NewRows(caregiverCols).
			AddRow("cg-1", "u-1", "Ana", "ana@example.com", "", "", nil, nil,
				30000, true, "verified", "{}", "20", "4.7", 3, 5, now, now))
	mock.ExpectCommit()

	caregiver, err := repo.CreateReview(context.Background(), &models.Review{
		ID: "r-1", ServiceID: "svc", FamilyID: "family-1", CaregiverID: "cg-1", Rating: 5, CreatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, 4.7, caregiver.Rating)
	assert.Equal(t, 3, caregiver.TotalReviews)
	assert.Nil(t, caregiver.Location)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReview_AlreadyReviewed(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (service_id) DO NOTHING")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.CreateReview(context.Background(), &models.Review{ID: "r-2", ServiceID: "svc", CaregiverID: "cg-1", Rating: 3})
	assert.ErrorIs(t, err, models.ErrAlreadyReviewed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCaregiverLocation(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE caregivers SET location_lat = $1, location_lng = $2")).
		WithArgs(-34.6, -58.4, now, "cg-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateCaregiverLocation(context.Background(), "cg-1", models.Location{Latitude: -34.6, Longitude: -58.4}, now))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE caregivers SET is_available = $1")).
		WithArgs(false, now, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateCaregiverAvailability(context.Background(), "missing", false, now)
	assert.ErrorIs(t, err, models.ErrCaregiverNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertFamily(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id) DO UPDATE SET")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.UpsertFamily(context.Background(), &models.Family{ID: "family-1", UserID: "u", Name: "Pérez"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCaregiversByVerification(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE verification_status = $1 ORDER BY created_at")).
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows(caregiverCols).
			AddRow("cg-1", "u-1", "Ana", "", "", "", -34.6, -58.4,
				30000, true, "pending", "{personal_care}", "20", "0", 0, 0, now, now))

	caregivers, err := repo.ListCaregiversByVerification(context.Background(), models.VerificationPending)
	require.NoError(t, err)
	require.Len(t, caregivers, 1)
	assert.Equal(t, []models.ServiceType{models.ServiceTypePersonalCare}, caregivers[0].Specialties)
}

func TestGetStats(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("AS total_families")).
		WillReturnRows(sqlmock.NewRows([]string{
			"total_families", "total_caregivers", "pending_caregivers", "total_services",
			"active_services", "completed_services", "total_revenue",
		}).AddRow(10, 7, 2, 30, 4, 20, "412.50"))

	stats, err := repo.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.PendingCaregivers)
	assert.Equal(t, 412.5, stats.TotalRevenue)
	assert.Equal(t, 0, stats.OnlineUsers)
}

func TestListReviewsByCaregiver(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Date(2026, 10, 4, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.caregiver_id = $1")).
		WithArgs("cg-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "service_id", "rating", "comment", "family_name", "created_at"}).
			AddRow("rev-2", "svc-2", 5, "Excelente", "Pérez", now).
			AddRow("rev-1", "svc-1", 4, "", "Gómez", now.Add(-48*time.Hour)))

	reviews, err := repo.ListReviewsByCaregiver(context.Background(), "cg-1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Pérez", reviews[0].FamilyName)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReviewsByCaregiver_None(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reviews r")).
		WithArgs("cg-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "service_id", "rating", "comment", "family_name", "created_at"}))

	reviews, err := repo.ListReviewsByCaregiver(context.Background(), "cg-2")
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}
