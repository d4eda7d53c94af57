package repository

import (
	"context"
	"time"

	"mentorship/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageRepository defines persistence operations for chat messages.
type MessageRepository interface {
	// Create persists a new chat message.
	Create(ctx context.Context, msg *entity.ChatMessage) error

	// ListByMatch retrieves every message of a match ordered by creation time, oldest first.
	ListByMatch(ctx context.Context, matchID uuid.UUID) ([]*entity.ChatMessage, error)

	// MarkRead stamps readAt on every unread message of the match addressed to receiverID.
	MarkRead(ctx context.Context, matchID, receiverID uuid.UUID, readAt time.Time) (int64, error)

	// CountUnread counts unread messages of the match addressed to receiverID.
	CountUnread(ctx context.Context, matchID, receiverID uuid.UUID) (int64, error)
}
