package profile

import (
	"context"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Juankcba/choapp-back/services/profile ProfileUC

// ProfileUC defines caregiver and family profile management, reviews and admin tools
type ProfileUC interface {
	GetMyCaregiver(ctx context.Context, userID string) (*models.Caregiver, error)
	UpsertMyCaregiver(ctx context.Context, userID, email string, req *models.UpdateCaregiverRequest) (*models.Caregiver, error)
	UpdateMyLocation(ctx context.Context, userID string, location models.Location) (*models.Caregiver, error)
	SetMyAvailability(ctx context.Context, userID string, available bool) (*models.Caregiver, error)

	GetMyFamily(ctx context.Context, userID string) (*models.Family, error)
	UpsertMyFamily(ctx context.Context, userID string, req *models.UpsertFamilyRequest) (*models.Family, error)

	ReviewService(ctx context.Context, userID, serviceID string, req *models.CreateReviewRequest) (*models.Review, error)
	ListCaregiverReviews(ctx context.Context, caregiverID string) ([]*models.CaregiverReview, error)

	ListPendingCaregivers(ctx context.Context) ([]*models.Caregiver, error)
	VerifyCaregiver(ctx context.Context, caregiverID string, status models.VerificationStatus) (*models.Caregiver, error)
	GetStats(ctx context.Context) (*models.AdminStats, error)
}
