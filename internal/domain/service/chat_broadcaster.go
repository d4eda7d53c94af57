package service

import (
	"mentorship/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatBroadcaster fans out newly stored chat messages to live listeners of a match.
type ChatBroadcaster interface {
	// Publish delivers msg to every current subscriber of its match without blocking.
	Publish(msg *entity.ChatMessage)

	// Subscribe registers a listener for matchID. The returned func unsubscribes and closes the channel.
	Subscribe(matchID uuid.UUID) (<-chan *entity.ChatMessage, func())
}
