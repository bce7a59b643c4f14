package gateway

import (
	"context"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

// PublishEvent publishes a domain event on the given subject
func (g *MatchGW) PublishEvent(ctx context.Context, subject string, event models.DomainEvent) error {
	if g.events == nil {
		logger.DebugCtx(ctx, "Event stream not configured, skipping event",
			logger.String("subject", subject))
		return nil
	}
	if err := g.events.PublishJSON(subject, event); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}
