package usecase

import (
	"context"
	"errors"

	"github.com/Juankcba/choapp-back/internal/pkg/constants"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

// GetPaymentHistory lists the services the caller paid for or earned from,
// most recently updated first. Callers without a profile get an empty list.
func (uc *PaymentUC) GetPaymentHistory(ctx context.Context, actor models.Actor) ([]*models.PaymentHistoryEntry, error) {
	var (
		services []*models.Service
		err      error
	)

	switch actor.Role {
	case constants.RoleCaregiver:
		caregiver, lookupErr := uc.paymentRepo.GetCaregiverByUserID(ctx, actor.UserID)
		if errors.Is(lookupErr, models.ErrNotFound) {
			return []*models.PaymentHistoryEntry{}, nil
		}
		if lookupErr != nil {
			return nil, lookupErr
		}
		services, err = uc.paymentRepo.ListPaymentHistoryByCaregiver(ctx, caregiver.ID)
	default:
		family, lookupErr := uc.paymentRepo.GetFamilyByUserID(ctx, actor.UserID)
		if errors.Is(lookupErr, models.ErrNotFound) {
			return []*models.PaymentHistoryEntry{}, nil
		}
		if lookupErr != nil {
			return nil, lookupErr
		}
		services, err = uc.paymentRepo.ListPaymentHistoryByFamily(ctx, family.ID)
	}
	if err != nil {
		return nil, err
	}

	history := make([]*models.PaymentHistoryEntry, 0, len(services))
	for _, s := range services {
		history = append(history, &models.PaymentHistoryEntry{
			ServiceID:     s.ID,
			ServiceType:   s.ServiceType,
			ServiceName:   s.ServiceType.DisplayName(),
			ServiceStatus: s.Status,
			ScheduledDate: s.ScheduledDate,
			Duration:      s.Duration,
			Payment:       s.Payment,
			UpdatedAt:     s.UpdatedAt,
		})
	}
	return history, nil
}
