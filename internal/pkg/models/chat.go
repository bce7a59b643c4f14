package models

import (
	"fmt"
	"time"
)

// MaxChatMessageLength bounds a single chat message, in characters
const MaxChatMessageLength = 2000

var (
	ErrChatClosed      = fmt.Errorf("%w: chat is not open for this caregiver", ErrInvalidState)
	ErrNotAParticipant = fmt.Errorf("%w: not a participant of this chat", ErrForbidden)
)

// ChatMessage is one message in the thread between a family and a caregiver
// about a service
type ChatMessage struct {
	ID          string    `json:"id" bson:"_id"`
	ServiceID   string    `json:"service_id" bson:"service_id"`
	CaregiverID string    `json:"caregiver_id" bson:"caregiver_id"`
	SenderID    string    `json:"sender_id" bson:"sender_id"`
	SenderRole  string    `json:"sender_role" bson:"sender_role"`
	Content     string    `json:"content" bson:"content"`
	IsRead      bool      `json:"is_read" bson:"is_read"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// ChatParty is one side of a chat thread
type ChatParty struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

// ChatThread identifies both parties of a (service, caregiver) thread.
// Open is true when the caregiver is assigned to the service or has shown
// interest in it.
type ChatThread struct {
	ServiceID       string        `db:"service_id"`
	ServiceType     ServiceType   `db:"service_type"`
	ServiceStatus   ServiceStatus `db:"status"`
	FamilyUserID    string        `db:"family_user_id"`
	FamilyName      string        `db:"family_name"`
	FamilyEmail     string        `db:"family_email"`
	CaregiverID     string        `db:"caregiver_id"`
	CaregiverUserID string        `db:"caregiver_user_id"`
	CaregiverName   string        `db:"caregiver_name"`
	CaregiverEmail  string        `db:"caregiver_email"`
	Open            bool          `db:"open"`
}

// Family returns the family side of the thread
func (t *ChatThread) Family() ChatParty {
	return ChatParty{UserID: t.FamilyUserID, Name: t.FamilyName, Email: t.FamilyEmail, Role: "family"}
}

// Caregiver returns the caregiver side of the thread
func (t *ChatThread) Caregiver() ChatParty {
	return ChatParty{UserID: t.CaregiverUserID, Name: t.CaregiverName, Email: t.CaregiverEmail, Role: "caregiver"}
}

// Parties resolves the sender and the recipient for a user in the thread
func (t *ChatThread) Parties(userID string) (sender, recipient ChatParty, ok bool) {
	switch userID {
	case t.FamilyUserID:
		return t.Family(), t.Caregiver(), true
	case t.CaregiverUserID:
		return t.Caregiver(), t.Family(), true
	}
	return ChatParty{}, ChatParty{}, false
}

// SendChatMessageRequest is the payload to post a chat message
type SendChatMessageRequest struct {
	Content string `json:"content"`
}

// ChatHistory is a thread's messages, oldest first
type ChatHistory struct {
	ServiceID   string         `json:"service_id"`
	CaregiverID string         `json:"caregiver_id"`
	Messages    []*ChatMessage `json:"messages"`
	Unread      int            `json:"unread"`
}

// MarkReadResult reports how many messages were marked as read
type MarkReadResult struct {
	Updated int64 `json:"updated"`
}
