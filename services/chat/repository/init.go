package repository

import (
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/mongo"
)

const messagesCollection = "chat_messages"

// ChatRepo implements the chat repository interface
type ChatRepo struct {
	cfg      *models.Config
	db       *sqlx.DB
	messages *mongo.Collection
}

// NewChatRepository creates a chat repository over the relational store and
// the document store holding messages
func NewChatRepository(cfg *models.Config, db *sqlx.DB, store *mongo.Database) *ChatRepo {
	return &ChatRepo{
		cfg:      cfg,
		db:       db,
		messages: store.Collection(messagesCollection),
	}
}
