package gateway

import (
	"context"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/constants"
	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

// EnqueueMail queues a transactional email for the mail consumer
func (g *MatchGW) EnqueueMail(ctx context.Context, job models.MailJob) error {
	if job.To == "" {
		return fmt.Errorf("mail %s has no recipient", job.Template)
	}
	if g.mail == nil {
		logger.WarnCtx(ctx, "Mail queue not configured, dropping mail",
			logger.String("template", job.Template),
			logger.String("to", job.To))
		return nil
	}

	topic := g.mailTopic
	if topic == "" {
		topic = constants.TopicMailSend
	}
	if err := g.mail.Publish(topic, job); err != nil {
		return fmt.Errorf("failed to enqueue %s mail: %w", job.Template, err)
	}
	return nil
}
