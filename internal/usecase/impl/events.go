package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mentorship/internal/delivery/context"
	"mentorship/internal/domain/constants"
	"mentorship/internal/domain/lifecycle"
	"mentorship/internal/domain/service"
	"mentorship/internal/util"

	"github.com/google/uuid"
)

const previewMaxRunes = 80

// eventEmitter publishes match events after their transaction has committed.
// Publishing failures are logged and never reach the caller.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (e *eventEmitter) emit(ctx context.Context, event *service.MatchEvent) {
	if e.publisher == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC().Format(time.RFC3339Nano)

	// The user action already succeeded, so a cancelled request must not abort publishing.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := e.publisher.PublishMatchEvent(pubCtx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).WarnContext(ctx, "Failed to publish match event",
			slog.String(constants.AttrEventType, string(event.Type)),
			slog.String(constants.AttrMatchID, event.MatchID),
			slog.Any("error", err),
		)
	}
}

func newMatchEvent(eventType service.MatchEventType, matchID, actorID, recipientID uuid.UUID) *service.MatchEvent {
	return &service.MatchEvent{
		Type:        eventType,
		MatchID:     matchID.String(),
		ActorID:     actorID.String(),
		RecipientID: recipientID.String(),
	}
}

// preview shortens text for notification bodies.
func preview(text string) string {
	return util.TruncateRunes(text, previewMaxRunes)
}
