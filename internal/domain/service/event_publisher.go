package service

import (
	"context"
)

// MatchEventType names what happened to a match.
type MatchEventType string

const (
	EventMentorshipRequested MatchEventType = "mentorship.requested"
	EventMentorshipAccepted  MatchEventType = "mentorship.accepted"
	EventMentorshipDeclined  MatchEventType = "mentorship.declined"
	EventMentorshipCompleted MatchEventType = "mentorship.completed"
	EventChatMessageSent     MatchEventType = "chat.message_sent"
)

// MatchEvent is published after a match mutation commits and consumed by the notification worker.
type MatchEvent struct {
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing
	EventID     string         `json:"event_id"`
	Type        MatchEventType `json:"type"`
	MatchID     string         `json:"match_id"`
	ActorID     string         `json:"actor_id"`     // User who caused the event
	RecipientID string         `json:"recipient_id"` // User to notify
	MessageID   string         `json:"message_id,omitempty"`
	Preview     string         `json:"preview,omitempty"` // Short text shown in the notification body
	OccurredAt  string         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMatchEvent publishes a match event for async processing
	PublishMatchEvent(ctx context.Context, event *MatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
