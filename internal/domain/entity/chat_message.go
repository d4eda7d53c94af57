package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageType classifies the body of a chat message.
type MessageType string

const (
	MessageTypeText MessageType = "text"
	MessageTypeCode MessageType = "code"
	MessageTypeFile MessageType = "file"
)

// IsValid checks if the message type is one of text, code or file.
func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeText, MessageTypeCode, MessageTypeFile:
		return true
	default:
		return false
	}
}

// ParseMessageType maps an empty value to text and rejects anything unknown.
func ParseMessageType(raw string) (MessageType, bool) {
	if raw == "" {
		return MessageTypeText, true
	}

	t := MessageType(raw)

	return t, t.IsValid()
}

// ChatMessage is a single message exchanged inside a match.
type ChatMessage struct {
	ID          uuid.UUID   `json:"id"`
	MatchID     uuid.UUID   `json:"match_id"`
	SenderID    uuid.UUID   `json:"sender_id"`
	ReceiverID  uuid.UUID   `json:"receiver_id"` // Always the match party that is not the sender.
	Body        string      `json:"message"`
	MessageType MessageType `json:"message_type"`
	IsRead      bool        `json:"is_read"`
	ReadAt      *time.Time  `json:"read_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
