package chat

import (
	"context"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Juankcba/choapp-back/services/chat ChatRepo

// ChatRepo resolves thread parties from PostgreSQL and stores messages in MongoDB
type ChatRepo interface {
	GetThread(ctx context.Context, serviceID, caregiverID string) (*models.ChatThread, error)
	InsertMessage(ctx context.Context, message *models.ChatMessage) error
	ListMessages(ctx context.Context, serviceID, caregiverID string) ([]*models.ChatMessage, error)
	MarkRead(ctx context.Context, serviceID, caregiverID, readerID string) (int64, error)
}
