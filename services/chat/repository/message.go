package repository

import (
	"context"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the thread index messages are listed by
func (r *ChatRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "service_id", Value: 1}, {Key: "caregiver_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create chat index: %w", err)
	}
	return nil
}

// InsertMessage appends a message to its thread
func (r *ChatRepo) InsertMessage(ctx context.Context, message *models.ChatMessage) error {
	if _, err := r.messages.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// ListMessages returns a thread's messages, oldest first
func (r *ChatRepo) ListMessages(ctx context.Context, serviceID, caregiverID string) ([]*models.ChatMessage, error) {
	filter := bson.M{"service_id": serviceID, "caregiver_id": caregiverID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.messages.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []*models.ChatMessage{}
	for cursor.Next(ctx) {
		var message models.ChatMessage
		if err := cursor.Decode(&message); err != nil {
			return nil, fmt.Errorf("failed to decode chat message: %w", err)
		}
		messages = append(messages, &message)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chat messages: %w", err)
	}
	return messages, nil
}

// MarkRead flags every unread message the other party sent to the reader
func (r *ChatRepo) MarkRead(ctx context.Context, serviceID, caregiverID, readerID string) (int64, error) {
	filter := bson.M{
		"service_id":   serviceID,
		"caregiver_id": caregiverID,
		"sender_id":    bson.M{"$ne": readerID},
		"is_read":      false,
	}
	result, err := r.messages.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return 0, fmt.Errorf("failed to mark chat messages read: %w", err)
	}
	return result.ModifiedCount, nil
}
