package match

import (
	"context"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Juankcba/choapp-back/services/match MatchRepo

// MatchRepo defines the interface for match data access operations.
// Every status change is a compare-and-swap on the row version and
// returns models.ErrConflict when the version moved.
type MatchRepo interface {
	// Service operations
	CreateService(ctx context.Context, service *models.Service) error
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	ListServicesByFamily(ctx context.Context, familyID string) ([]*models.Service, error)
	UpdateServiceDetails(ctx context.Context, service *models.Service) error
	UpdateServiceStatus(ctx context.Context, service *models.Service) error
	DeletePendingService(ctx context.Context, service *models.Service) error
	ListActiveServices(ctx context.Context) ([]*models.Service, error)
	ListUnderNotifiedServices(ctx context.Context, since, before time.Time, minNotifications int) ([]*models.Service, error)

	// Directory
	ListMatchableCaregivers(ctx context.Context) ([]*models.Caregiver, error)
	GetCaregiver(ctx context.Context, caregiverID string) (*models.Caregiver, error)
	GetCaregiverByUserID(ctx context.Context, userID string) (*models.Caregiver, error)
	GetFamily(ctx context.Context, familyID string) (*models.Family, error)
	GetFamilyByUserID(ctx context.Context, userID string) (*models.Family, error)

	// Notification operations
	CreateNotification(ctx context.Context, notification *models.ServiceNotification) error
	GetLatestNotification(ctx context.Context, serviceID, caregiverID string) (*models.ServiceNotification, error)
	UpdateNotificationStatus(ctx context.Context, notification *models.ServiceNotification) error
	UpdateNotificationChannel(ctx context.Context, notificationID string, channel models.NotificationChannel) error
	ListCandidates(ctx context.Context, serviceID string) ([]*models.Candidate, error)
	ListOffersByCaregiver(ctx context.Context, caregiverID string) ([]*models.Offer, error)

	// Multi-row transitions, each in a single transaction
	RecordInterest(ctx context.Context, service *models.Service, notification *models.ServiceNotification) error
	AssignCaregiver(ctx context.Context, service *models.Service, notification *models.ServiceNotification) error
	CompleteService(ctx context.Context, service *models.Service) error

	// Re-notify window
	MarkNotified(ctx context.Context, serviceID, caregiverID string, ttl time.Duration) error
	WasNotified(ctx context.Context, serviceID, caregiverID string) (bool, error)
}
