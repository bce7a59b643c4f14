package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/internal/pkg/tasks"
	"github.com/Juankcba/choapp-back/services/match/mocks"
	"github.com/Juankcba/choapp-back/services/match/usecase"
	"github.com/golang/mock/gomock"
)

// kmPerDegree is the length of one degree of latitude for R = 6371 km
const kmPerDegree = 111.19493

type fixture struct {
	uc      *usecase.MatchUC
	repo    *mocks.MockMatchRepo
	gw      *mocks.MockMatchGW
	payment *mocks.MockPaymentGW
	runner  *tasks.Runner
	cfg     *models.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &models.Config{
		Match: models.MatchConfig{
			SweepWindow:           7 * 24 * time.Hour,
			SweepMinNotifications: 5,
			RenotifyWindow:        24 * time.Hour,
			AreaPrecision:         5,
		},
	}

	f := &fixture{
		repo:    mocks.NewMockMatchRepo(ctrl),
		gw:      mocks.NewMockMatchGW(ctrl),
		payment: mocks.NewMockPaymentGW(ctrl),
		runner:  tasks.NewRunner(context.Background(), time.Second),
		cfg:     cfg,
	}
	f.uc = usecase.NewMatchUC(cfg, f.repo, f.gw, f.payment, f.runner)
	return f
}

// allowEvents accepts any domain event publication
func (f *fixture) allowEvents() {
	f.gw.EXPECT().PublishEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func caregiverAt(id string, lat, lng float64, specialties ...models.ServiceType) *models.Caregiver {
	return &models.Caregiver{
		ID:                 id,
		UserID:             "user-" + id,
		Name:               "Caregiver " + id,
		Email:              id + "@example.com",
		Location:           &models.Location{Latitude: lat, Longitude: lng},
		ServiceRadius:      30000,
		IsAvailable:        true,
		VerificationStatus: models.VerificationVerified,
		Specialties:        specialties,
		HourlyRate:         20,
		Rating:             4.5,
	}
}

func serviceAt(id string, status models.ServiceStatus) *models.Service {
	return &models.Service{
		ID:            id,
		FamilyID:      "family-1",
		ServiceType:   models.ServiceTypeElderlyCare,
		Patient:       models.PatientInfo{Name: "Rosa", Age: 81},
		Location:      &models.Location{Latitude: -34.60, Longitude: -58.38},
		Address:       "Av. Corrientes 1234",
		ScheduledDate: time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC),
		Duration:      4,
		Status:        status,
		Payment:       models.ServicePayment{Status: models.PaymentStatusUnpaid},
		Version:       1,
	}
}

func family() *models.Family {
	return &models.Family{ID: "family-1", UserID: "user-family-1", Name: "Familia Pérez", Email: "perez@example.com"}
}

func strPtr(s string) *string { return &s }
