package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Juankcba/choapp-back/internal/pkg/database"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serviceCols = []string{
	"id", "family_id", "caregiver_id", "service_type",
	"patient_name", "patient_age", "patient_condition", "patient_special_needs",
	"location_lat", "location_lng", "address", "scheduled_date", "duration", "notes", "status",
	"amount", "commission_family", "commission_caregiver", "net_amount", "payment_status",
	"checkout_id", "external_payment_ref", "released_at",
	"actual_start", "actual_end", "cancel_reason", "version", "created_at", "updated_at",
}

var caregiverCols = []string{
	"id", "user_id", "name", "email", "phone", "bio", "location_lat", "location_lng",
	"service_radius", "is_available", "verification_status", "specialties", "hourly_rate",
	"rating", "total_reviews", "total_services", "created_at", "updated_at",
}

var fixedTime = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &database.RedisClient{Client: client}, mr
}

func newRepo(t *testing.T) (*MatchRepo, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	redisClient, _ := setupMockRedis(t)
	return NewMatchRepository(&models.Config{}, db, redisClient), mock
}

func serviceRow(rows *sqlmock.Rows, id string, status models.ServiceStatus, caregiverID interface{}) *sqlmock.Rows {
	return rows.AddRow(
		id, "family-1", caregiverID, "elderly_care",
		"Rosa", 81, "", "",
		-34.60, -58.38, "Av. Corrientes 1234", fixedTime, 4, "", string(status),
		"0", "0", "0", "0", "unpaid",
		"", "", nil,
		nil, nil, "", 2, fixedTime, fixedTime,
	)
}

func TestCreateService(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO services")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateService(context.Background(), &models.Service{
		ID: "svc", FamilyID: "family-1", ServiceType: models.ServiceTypeCompanionship,
		Status: models.ServiceStatusPending, Version: 1,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetService(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id = $1")).
		WithArgs("svc").
		WillReturnRows(serviceRow(sqlmock.NewRows(serviceCols), "svc", models.ServiceStatusAccepted, "cg-1"))

	service, err := repo.GetService(context.Background(), "svc")
	require.NoError(t, err)
	assert.Equal(t, "svc", service.ID)
	assert.Equal(t, models.ServiceStatusAccepted, service.Status)
	require.NotNil(t, service.CaregiverID)
	assert.Equal(t, "cg-1", *service.CaregiverID)
	require.NotNil(t, service.Location)
	assert.Equal(t, -34.60, service.Location.Latitude)
	assert.Equal(t, 2, service.Version)
	assert.Nil(t, service.ActualStart)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetService_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetService(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrServiceNotFound)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateServiceStatus(t *testing.T) {
	t.Run("swaps version", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE services SET")).
			WithArgs("in_progress", nil, sqlmock.AnyArg(), nil, "", sqlmock.AnyArg(), "svc", 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		now := fixedTime
		service := &models.Service{ID: "svc", Status: models.ServiceStatusInProgress, ActualStart: &now, Version: 3}
		require.NoError(t, repo.UpdateServiceStatus(context.Background(), service))
		assert.Equal(t, 4, service.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version is a conflict", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE services SET")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		service := &models.Service{ID: "svc", Status: models.ServiceStatusInProgress, Version: 3}
		err := repo.UpdateServiceStatus(context.Background(), service)
		assert.ErrorIs(t, err, models.ErrConflict)
		assert.Equal(t, 3, service.Version)
	})
}

func TestUpdateServiceDetails_Conflict(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $10 AND version = $11 AND status = 'pending'")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateServiceDetails(context.Background(), &models.Service{ID: "svc", Version: 1})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestAssignCaregiver(t *testing.T) {
	repo, mock := newRepo(t)
	caregiverID := "x"
	now := fixedTime

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE services SET")).
		WithArgs("accepted", "x", now, "svc", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET status = $1, responded_at = $2")).
		WithArgs("accepted", sqlmock.AnyArg(), "n-x", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'declined'")).
		WithArgs(sqlmock.AnyArg(), "svc", "n-x").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	service := &models.Service{ID: "svc", Status: models.ServiceStatusAccepted, CaregiverID: &caregiverID, UpdatedAt: now, Version: 2}
	notification := &models.ServiceNotification{ID: "n-x", Status: models.NotificationAccepted, Version: 1,
		RespondedAt: sql.NullTime{Time: now, Valid: true}}

	require.NoError(t, repo.AssignCaregiver(context.Background(), service, notification))
	assert.Equal(t, 3, service.Version)
	assert.Equal(t, 2, notification.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignCaregiver_LostRace(t *testing.T) {
	repo, mock := newRepo(t)
	caregiverID := "x"

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE services SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	service := &models.Service{ID: "svc", Status: models.ServiceStatusAccepted, CaregiverID: &caregiverID, Version: 2}
	err := repo.AssignCaregiver(context.Background(), service, &models.ServiceNotification{ID: "n-x", Version: 1})
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.Equal(t, 2, service.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordInterest(t *testing.T) {
	t.Run("pending service becomes matched", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE service_notifications")).
			WithArgs("interested", sqlmock.AnyArg(), "n-x", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("RETURNING version")).
			WithArgs("svc", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(2))
		mock.ExpectCommit()

		service := &models.Service{ID: "svc", Status: models.ServiceStatusMatched, Version: 1}
		notification := &models.ServiceNotification{ID: "n-x", Status: models.NotificationInterested, Version: 1}

		require.NoError(t, repo.RecordInterest(context.Background(), service, notification))
		assert.Equal(t, 2, service.Version)
		assert.Equal(t, 2, notification.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("service moved on", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE service_notifications")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("RETURNING version")).
			WillReturnRows(sqlmock.NewRows([]string{"version"}))
		mock.ExpectRollback()

		err := repo.RecordInterest(context.Background(),
			&models.Service{ID: "svc", Version: 4},
			&models.ServiceNotification{ID: "n-x", Version: 1})
		assert.ErrorIs(t, err, models.ErrServiceClosed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCompleteService(t *testing.T) {
	repo, mock := newRepo(t)
	caregiverID := "x"
	now := fixedTime

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE services SET")).
		WithArgs("completed", "x", nil, sqlmock.AnyArg(), "", now, "svc", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE caregivers SET total_services = total_services + 1")).
		WithArgs(now, "x").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	service := &models.Service{ID: "svc", CaregiverID: &caregiverID, Status: models.ServiceStatusCompleted,
		ActualEnd: &now, UpdatedAt: now, Version: 5}
	require.NoError(t, repo.CompleteService(context.Background(), service))
	assert.Equal(t, 6, service.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePendingService(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM service_notifications WHERE service_id = $1 AND status = 'pending'")).
		WithArgs("svc").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM services WHERE id = $1 AND version = $2 AND status = 'pending'")).
		WithArgs("svc", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeletePendingService(context.Background(), &models.Service{ID: "svc", Version: 1}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUnderNotifiedServices(t *testing.T) {
	repo, mock := newRepo(t)
	since := fixedTime.Add(-7 * 24 * time.Hour)
	before := fixedTime.Add(-10 * time.Minute)

	rows := sqlmock.NewRows(serviceCols)
	serviceRow(rows, "a", models.ServiceStatusPending, nil)
	serviceRow(rows, "b", models.ServiceStatusPending, nil)
	mock.ExpectQuery(regexp.QuoteMeta("AND s.created_at < $2")).
		WithArgs(since, before, 5).
		WillReturnRows(rows)

	services, err := repo.ListUnderNotifiedServices(context.Background(), since, before, 5)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Nil(t, services[0].CaregiverID)
	assert.Equal(t, "b", services[1].ID)
}

func TestUpdateNotificationChannel(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE service_notifications SET channel = $1 WHERE id = $2")).
		WithArgs(models.ChannelBoth, "n-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateNotificationChannel(context.Background(), "n-1", models.ChannelBoth))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE service_notifications SET channel")).
		WithArgs(models.ChannelEmail, "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateNotificationChannel(context.Background(), "gone", models.ChannelEmail)
	assert.ErrorIs(t, err, models.ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMatchableCaregivers(t *testing.T) {
	repo, mock := newRepo(t)

	rows := sqlmock.NewRows(caregiverCols).
		AddRow("cg-1", "u-1", "Ana", "ana@example.com", "", "", -34.6, -58.4,
			25000, true, "verified", "{elderly_care,companionship}", "18.50",
			"4.8", 12, 30, fixedTime, fixedTime)
	mock.ExpectQuery(regexp.QuoteMeta("verification_status = 'verified'")).WillReturnRows(rows)

	caregivers, err := repo.ListMatchableCaregivers(context.Background())
	require.NoError(t, err)
	require.Len(t, caregivers, 1)
	cg := caregivers[0]
	assert.Equal(t, []models.ServiceType{models.ServiceTypeElderlyCare, models.ServiceTypeCompanionship}, cg.Specialties)
	assert.Equal(t, 25.0, cg.RadiusKm())
	assert.Equal(t, 18.5, cg.HourlyRate)
	assert.True(t, cg.IsMatchable())
}

func TestGetLatestNotification(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs("svc", "x").
		WillReturnRows(sqlmock.NewRows([]string{"id", "service_id", "caregiver_id", "distance", "channel", "status", "responded_at", "version", "created_at"}).
			AddRow("n-2", "svc", "x", 4.2, "email", "pending", nil, 1, fixedTime))

	n, err := repo.GetLatestNotification(context.Background(), "svc", "x")
	require.NoError(t, err)
	assert.Equal(t, "n-2", n.ID)
	assert.Equal(t, models.ChannelEmail, n.Channel)
	assert.False(t, n.RespondedAt.Valid)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs("svc", "y").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetLatestNotification(context.Background(), "svc", "y")
	assert.ErrorIs(t, err, models.ErrNotificationNotFound)
}

func TestListCandidates(t *testing.T) {
	repo, mock := newRepo(t)

	cols := append([]string{"distance", "notification_status", "responded_at"}, caregiverCols...)
	rows := sqlmock.NewRows(cols).
		AddRow(2.5, "interested", fixedTime,
			"cg-1", "u-1", "Ana", "ana@example.com", "", "", -34.6, -58.4,
			30000, true, "verified", "{}", "20", "4.5", 3, 7, fixedTime, fixedTime)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE n.service_id = $1 AND n.status = 'interested'")).
		WithArgs("svc").
		WillReturnRows(rows)

	candidates, err := repo.ListCandidates(context.Background(), "svc")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "cg-1", candidates[0].Caregiver.ID)
	assert.Equal(t, 2.5, candidates[0].Distance)
	assert.Equal(t, models.NotificationInterested, candidates[0].Status)
	require.NotNil(t, candidates[0].RespondedAt)
}

func TestGetFamilyByUserID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM families WHERE user_id = $1")).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetFamilyByUserID(context.Background(), "nobody")
	assert.ErrorIs(t, err, models.ErrFamilyNotFound)
}

func TestNotifiedWindow(t *testing.T) {
	db, _ := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	repo := NewMatchRepository(&models.Config{}, db, redisClient)
	ctx := context.Background()

	seen, err := repo.WasNotified(ctx, "svc", "x")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, repo.MarkNotified(ctx, "svc", "x", time.Hour))
	assert.True(t, mr.Exists("match:notified:svc:x"))

	seen, err = repo.WasNotified(ctx, "svc", "x")
	require.NoError(t, err)
	assert.True(t, seen)

	mr.FastForward(61 * time.Minute)

	seen, err = repo.WasNotified(ctx, "svc", "x")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestListActiveServices(t *testing.T) {
	repo, mock := newRepo(t)

	rows := sqlmock.NewRows(serviceCols)
	serviceRow(rows, "svc-2", models.ServiceStatusInProgress, "cg-1")
	serviceRow(rows, "svc-1", models.ServiceStatusPending, nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE status IN ('pending', 'matched', 'accepted', 'in_progress')")).
		WillReturnRows(rows)

	services, err := repo.ListActiveServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, models.ServiceStatusInProgress, services[0].Status)
	require.NotNil(t, services[0].CaregiverID)
	assert.Nil(t, services[1].CaregiverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
