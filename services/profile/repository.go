package profile

import (
	"context"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Juankcba/choapp-back/services/profile ProfileRepo

// ProfileRepo defines the persistence of profiles and reviews
type ProfileRepo interface {
	GetCaregiver(ctx context.Context, caregiverID string) (*models.Caregiver, error)
	GetCaregiverByUserID(ctx context.Context, userID string) (*models.Caregiver, error)
	CreateCaregiver(ctx context.Context, caregiver *models.Caregiver) error
	UpdateCaregiver(ctx context.Context, caregiver *models.Caregiver) error
	UpdateCaregiverLocation(ctx context.Context, caregiverID string, location models.Location, at time.Time) error
	UpdateCaregiverAvailability(ctx context.Context, caregiverID string, available bool, at time.Time) error
	UpdateVerification(ctx context.Context, caregiverID string, status models.VerificationStatus, at time.Time) error
	ListCaregiversByVerification(ctx context.Context, status models.VerificationStatus) ([]*models.Caregiver, error)

	GetFamilyByUserID(ctx context.Context, userID string) (*models.Family, error)
	UpsertFamily(ctx context.Context, family *models.Family) error

	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	CreateReview(ctx context.Context, review *models.Review) (*models.Caregiver, error)
	ListReviewsByCaregiver(ctx context.Context, caregiverID string) ([]*models.CaregiverReview, error)
	GetStats(ctx context.Context) (*models.AdminStats, error)
}
