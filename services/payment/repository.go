package payment

import (
	"context"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Juankcba/choapp-back/services/payment PaymentRepo

// PaymentRepo defines the persistence needed by the payment flow
type PaymentRepo interface {
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	SavePayment(ctx context.Context, service *models.Service) error
	GetCaregiver(ctx context.Context, caregiverID string) (*models.Caregiver, error)
	GetCaregiverByUserID(ctx context.Context, userID string) (*models.Caregiver, error)
	GetFamily(ctx context.Context, familyID string) (*models.Family, error)
	GetFamilyByUserID(ctx context.Context, userID string) (*models.Family, error)
	ListPaymentHistoryByFamily(ctx context.Context, familyID string) ([]*models.Service, error)
	ListPaymentHistoryByCaregiver(ctx context.Context, caregiverID string) ([]*models.Service, error)
}
