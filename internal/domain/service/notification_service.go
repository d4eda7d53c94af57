package service

import (
	"context"
)

// MaxNotificationBatch is the largest token batch a single multicast may carry.
const MaxNotificationBatch = 500

// PushMessage is the payload delivered to a device.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// BatchResult summarizes a multicast send.
type BatchResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the provider reported as unregistered or malformed
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends msg to up to MaxNotificationBatch device tokens
	SendBatchNotification(ctx context.Context, tokens []string, msg *PushMessage) (*BatchResult, error)
}
