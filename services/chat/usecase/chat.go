package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Juankcba/choapp-back/internal/pkg/constants"
	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/google/uuid"
)

const mailPreviewLength = 140

// GetMessages returns the thread to either party, or to an admin
func (uc *ChatUC) GetMessages(ctx context.Context, actor models.Actor, serviceID, caregiverID string) (*models.ChatHistory, error) {
	thread, err := uc.chatRepo.GetThread(ctx, serviceID, caregiverID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		if _, _, ok := thread.Parties(actor.UserID); !ok {
			return nil, models.ErrNotAParticipant
		}
		if !thread.Open {
			return nil, models.ErrChatClosed
		}
	}

	messages, err := uc.chatRepo.ListMessages(ctx, serviceID, caregiverID)
	if err != nil {
		return nil, err
	}

	history := &models.ChatHistory{
		ServiceID:   serviceID,
		CaregiverID: caregiverID,
		Messages:    messages,
	}
	for _, m := range messages {
		if !m.IsRead && m.SenderID != actor.UserID {
			history.Unread++
		}
	}
	return history, nil
}

// SendMessage stores a message and hands it to the other party: pushed when
// they are connected, mailed otherwise
func (uc *ChatUC) SendMessage(ctx context.Context, actor models.Actor, serviceID, caregiverID string, req *models.SendChatMessageRequest) (*models.ChatMessage, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: message is empty", models.ErrValidation)
	}
	if utf8.RuneCountInString(content) > models.MaxChatMessageLength {
		return nil, fmt.Errorf("%w: message exceeds %d characters", models.ErrValidation, models.MaxChatMessageLength)
	}

	thread, err := uc.chatRepo.GetThread(ctx, serviceID, caregiverID)
	if err != nil {
		return nil, err
	}
	sender, recipient, ok := thread.Parties(actor.UserID)
	if !ok {
		return nil, models.ErrNotAParticipant
	}
	if !thread.Open || thread.ServiceStatus == models.ServiceStatusCancelled {
		return nil, models.ErrChatClosed
	}

	message := &models.ChatMessage{
		ID:          uuid.New().String(),
		ServiceID:   thread.ServiceID,
		CaregiverID: thread.CaregiverID,
		SenderID:    sender.UserID,
		SenderRole:  sender.Role,
		Content:     content,
		CreatedAt:   models.Now(),
	}
	if err := uc.chatRepo.InsertMessage(ctx, message); err != nil {
		return nil, err
	}

	channel := uc.deliver(ctx, thread, sender, recipient, message)
	logger.InfoCtx(ctx, "Chat message sent",
		logger.ServiceID(thread.ServiceID),
		logger.CaregiverID(thread.CaregiverID),
		logger.String("sender_role", sender.Role),
		logger.String("channel", channel))
	return message, nil
}

// deliver reports the channel that carried the message, or "none"
func (uc *ChatUC) deliver(ctx context.Context, thread *models.ChatThread, sender, recipient models.ChatParty, message *models.ChatMessage) string {
	if recipient.UserID != "" && uc.chatGW.IsOnline(recipient.UserID) {
		err := uc.chatGW.PushToUser(ctx, recipient.UserID, constants.EventChatMessage, message)
		if err == nil {
			return "websocket"
		}
		logger.WarnCtx(ctx, "Failed to push chat message, falling back to mail",
			logger.UserID(recipient.UserID),
			logger.Err(err))
	}

	if recipient.Email == "" {
		return "none"
	}
	err := uc.chatGW.EnqueueMail(ctx, models.MailJob{
		Template: models.MailChatMessage,
		To:       recipient.Email,
		Name:     recipient.Name,
		Data: map[string]string{
			"service_id":   thread.ServiceID,
			"service_type": thread.ServiceType.DisplayName(),
			"sender_name":  sender.Name,
			"preview":      preview(message.Content),
		},
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to enqueue chat mail",
			logger.ServiceID(thread.ServiceID),
			logger.Err(err))
		return "none"
	}
	return "email"
}

// MarkAsRead flags the messages the caller received as read and tells the
// sender when they are connected
func (uc *ChatUC) MarkAsRead(ctx context.Context, actor models.Actor, serviceID, caregiverID string) (*models.MarkReadResult, error) {
	thread, err := uc.chatRepo.GetThread(ctx, serviceID, caregiverID)
	if err != nil {
		return nil, err
	}
	reader, other, ok := thread.Parties(actor.UserID)
	if !ok {
		return nil, models.ErrNotAParticipant
	}

	updated, err := uc.chatRepo.MarkRead(ctx, thread.ServiceID, thread.CaregiverID, reader.UserID)
	if err != nil {
		return nil, err
	}

	result := &models.MarkReadResult{Updated: updated}
	if updated > 0 && other.UserID != "" && uc.chatGW.IsOnline(other.UserID) {
		payload := map[string]interface{}{
			"service_id":   thread.ServiceID,
			"caregiver_id": thread.CaregiverID,
			"reader_id":    reader.UserID,
			"updated":      updated,
		}
		if err := uc.chatGW.PushToUser(ctx, other.UserID, constants.EventChatRead, payload); err != nil {
			logger.WarnCtx(ctx, "Failed to push read receipt",
				logger.UserID(other.UserID),
				logger.Err(err))
		}
	}
	return result, nil
}

func preview(content string) string {
	if utf8.RuneCountInString(content) <= mailPreviewLength {
		return content
	}
	runes := []rune(content)
	return string(runes[:mailPreviewLength]) + "…"
}
