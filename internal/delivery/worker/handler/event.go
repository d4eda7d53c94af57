// Package handler turns delivered match events into notification work.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "mentorship/internal/delivery/context"
	"mentorship/internal/domain/constants"
	"mentorship/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DecodeMatchEvent parses the JSON payload written by the event publishers.
func DecodeMatchEvent(data []byte) (*service.MatchEvent, error) {
	var event service.MatchEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse match event")
	}

	return &event, nil
}

// ResolveRequestID picks the request ID for tracing.
// Priority: transport attributes, then the event payload, then ctx, then a new UUID.
func ResolveRequestID(ctx context.Context, attributes map[string]string, event *service.MatchEvent) string {
	if requestID := attributes[constants.AttrRequestID]; requestID != "" {
		return requestID
	}

	if event != nil && event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// ScopeContext attaches requestID and a logger carrying it and the event identity.
func ScopeContext(ctx context.Context, logger *slog.Logger, requestID string, event *service.MatchEvent) (context.Context, *slog.Logger) {
	reqLogger := logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.Type)),
		slog.String("match_id", event.MatchID),
	)

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	return ctx, reqLogger
}
