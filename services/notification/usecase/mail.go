package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

// ErrUnknownTemplate is returned for mail jobs naming a template that does not exist
var ErrUnknownTemplate = errors.New("unknown mail template")

// DeliverMail renders a queued job and sends it. Without a configured provider
// the mail is logged and dropped.
func (uc *NotificationUC) DeliverMail(ctx context.Context, job models.MailJob) error {
	mail, err := uc.Render(job)
	if err != nil {
		return err
	}

	if !uc.mailSender.Configured() {
		logger.WarnCtx(ctx, "Email provider not configured, dropping mail",
			logger.String("template", job.Template),
			logger.String("to", job.To))
		return nil
	}

	messageID, err := uc.mailSender.Send(ctx, *mail)
	if err != nil {
		return fmt.Errorf("failed to send %s mail: %w", job.Template, err)
	}

	logger.InfoCtx(ctx, "Mail sent",
		logger.String("template", job.Template),
		logger.String("message_id", messageID))
	return nil
}

// Render fills the job's template
func (uc *NotificationUC) Render(job models.MailJob) (*models.RenderedMail, error) {
	tmpl, ok := mailTemplates[job.Template]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, job.Template)
	}
	if job.To == "" {
		return nil, fmt.Errorf("%w: mail has no recipient", models.ErrValidation)
	}

	data := make(map[string]string, len(job.Data)+2)
	for k, v := range job.Data {
		data[k] = v
	}
	data["name"] = job.Name
	if data["link"] == "" {
		data["link"] = uc.serviceLink(job.Data["service_id"])
	}

	var subject, text, html bytes.Buffer
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}
	if err := tmpl.text.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("render text body: %w", err)
	}
	if err := tmpl.html.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}

	return &models.RenderedMail{
		To:       job.To,
		Subject:  strings.TrimSpace(subject.String()),
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, nil
}

func (uc *NotificationUC) serviceLink(serviceID string) string {
	base := strings.TrimRight(uc.cfg.App.FrontendURL, "/")
	if serviceID == "" {
		return base
	}
	return base + "/services/" + serviceID
}
