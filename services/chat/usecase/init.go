package usecase

import (
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/services/chat"
)

// ChatUC implements the chat use case interface
type ChatUC struct {
	cfg      *models.Config
	chatRepo chat.ChatRepo
	chatGW   chat.ChatGW
}

// NewChatUC creates a new chat use case
func NewChatUC(cfg *models.Config, chatRepo chat.ChatRepo, chatGW chat.ChatGW) *ChatUC {
	return &ChatUC{
		cfg:      cfg,
		chatRepo: chatRepo,
		chatGW:   chatGW,
	}
}
