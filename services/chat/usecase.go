package chat

import (
	"context"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Juankcba/choapp-back/services/chat ChatUC

// ChatUC defines the one-to-one chat between a family and a caregiver about a service
type ChatUC interface {
	GetMessages(ctx context.Context, actor models.Actor, serviceID, caregiverID string) (*models.ChatHistory, error)
	SendMessage(ctx context.Context, actor models.Actor, serviceID, caregiverID string, req *models.SendChatMessageRequest) (*models.ChatMessage, error)
	MarkAsRead(ctx context.Context, actor models.Actor, serviceID, caregiverID string) (*models.MarkReadResult, error)
}
