package chat

import (
	"context"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Juankcba/choapp-back/services/chat ChatGW

// ChatGW reaches the other party of a thread
type ChatGW interface {
	IsOnline(userID string) bool
	PushToUser(ctx context.Context, userID, event string, payload interface{}) error
	EnqueueMail(ctx context.Context, job models.MailJob) error
}
