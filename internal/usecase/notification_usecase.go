package usecase

import (
	"context"
	"fmt"

	"mentorship/internal/domain/service"

	"github.com/pkg/errors"
)

// NotificationResult summarizes the push fan-out of one event.
type NotificationResult struct {
	Devices       int
	Sent          int
	Failed        int
	InvalidTokens int
}

// NotificationUsecase turns match events into push notifications for the recipient's devices.
type NotificationUsecase interface {
	// HandleMatchEvent delivers the event. Errors for which IsRetryable is true should be redelivered.
	HandleMatchEvent(ctx context.Context, event *service.MatchEvent) (*NotificationResult, error)
}

// retryableError wraps an error to indicate the event should be delivered again
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps an error as retryable
func NewRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}
