package match

import (
	"context"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Juankcba/choapp-back/services/match MatchUC

// MatchUC defines the interface for service matching and offer lifecycle logic
type MatchUC interface {
	// Family side
	CreateService(ctx context.Context, userID string, req *models.CreateServiceRequest) (*models.Service, error)
	GetService(ctx context.Context, actor models.Actor, serviceID string) (*models.Service, error)
	ListFamilyServices(ctx context.Context, userID string) ([]*models.Service, error)
	UpdateService(ctx context.Context, userID, serviceID string, req *models.UpdateServiceRequest) (*models.Service, error)
	DeleteService(ctx context.Context, userID, serviceID string) error
	CancelService(ctx context.Context, actor models.Actor, serviceID, reason string) (*models.Service, error)
	ListCandidates(ctx context.Context, userID, serviceID string) ([]*models.Candidate, error)
	SelectCaregiver(ctx context.Context, userID, serviceID, caregiverID string) (*models.SelectResult, error)

	// Caregiver side
	RespondToService(ctx context.Context, userID, serviceID string, status models.NotificationStatus) (*models.ServiceNotification, error)
	StartService(ctx context.Context, userID, serviceID string) (*models.Service, error)
	FinishService(ctx context.Context, userID, serviceID string) (*models.Service, error)
	ListCaregiverOffers(ctx context.Context, userID string) ([]*models.Offer, error)

	// Matching
	FindNearbyCaregivers(ctx context.Context, location *models.Location, serviceType models.ServiceType) ([]*models.NearbyCaregiver, error)
	NotifyNearbyCaregivers(ctx context.Context, serviceID string) (*models.NotifyResult, error)
	RecheckPendingServices(ctx context.Context) (*models.SweepResult, error)

	// Admin
	ListActiveServices(ctx context.Context) ([]*models.Service, error)
}
