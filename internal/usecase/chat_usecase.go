package usecase

import (
	"context"

	"mentorship/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatUsecase defines the conversation channel attached to an accepted or active match.
type ChatUsecase interface {
	// ListMessages returns the match history oldest first and then marks the caller's unread messages as read.
	// The returned messages reflect the state before marking.
	ListMessages(ctx context.Context, userID, matchID uuid.UUID) ([]*entity.ChatMessage, error)

	// SendMessage stores a message addressed to the other party. An empty messageType means text.
	SendMessage(ctx context.Context, senderID, matchID uuid.UUID, body, messageType string) (*entity.ChatMessage, error)

	// UnreadCount returns how many messages of the match are waiting for the caller.
	UnreadCount(ctx context.Context, userID, matchID uuid.UUID) (int64, error)

	// Subscribe authorizes the caller and streams messages sent to the match from now on.
	// The returned func must be called to release the subscription.
	Subscribe(ctx context.Context, userID, matchID uuid.UUID) (<-chan *entity.ChatMessage, func(), error)
}
