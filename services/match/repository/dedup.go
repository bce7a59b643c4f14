package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/constants"
)

// MarkNotified remembers that the caregiver was offered the service for ttl
func (r *MatchRepo) MarkNotified(ctx context.Context, serviceID, caregiverID string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyServiceNotified, serviceID, caregiverID)
	return r.redisClient.Set(ctx, key, time.Now().Unix(), ttl)
}

// WasNotified reports whether the caregiver was offered the service inside the window
func (r *MatchRepo) WasNotified(ctx context.Context, serviceID, caregiverID string) (bool, error) {
	key := fmt.Sprintf(constants.KeyServiceNotified, serviceID, caregiverID)
	return r.redisClient.Exists(ctx, key)
}
