package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"mentorship/config"
	deliverycontext "mentorship/internal/delivery/context"
	"mentorship/internal/domain/entity"
	domainerrors "mentorship/internal/domain/errors"
	"mentorship/internal/domain/repository"
	"mentorship/internal/domain/service"
	"mentorship/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	txManager     repository.TransactionManager
	broadcaster   service.ChatBroadcaster
	events        *eventEmitter
	maxBodyLength int
	logger        *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Broadcaster    service.ChatBroadcaster
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	maxBodyLength := 0
	if params.Config != nil && params.Config.Chat != nil {
		maxBodyLength = params.Config.Chat.MaxBodyLength
	}

	return &chatService{
		txManager:     params.TxManager,
		broadcaster:   params.Broadcaster,
		events:        &eventEmitter{publisher: params.EventPublisher, logger: params.Logger},
		maxBodyLength: maxBodyLength,
		logger:        params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

type matchFinder func(ctx context.Context, id uuid.UUID) (*entity.Match, error)

// authorizeChat loads the match and checks that userID may read or write its conversation.
// A missing match is reported the same way as a foreign one.
func authorizeChat(ctx context.Context, find matchFinder, userID, matchID uuid.UUID) (*entity.Match, error) {
	match, err := find(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorizedChatAccess, "match not found")
		}

		return nil, errors.Wrap(err, "failed to find match")
	}
	if !match.IsParty(userID) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorizedChatAccess, "caller is not a party to the match")
	}
	if !match.Status.AllowsChat() {
		return nil, errors.Wrapf(domainerrors.ErrUnauthorizedChatAccess, "chat is closed for %s matches", match.Status)
	}

	return match, nil
}

// ListMessages returns the conversation oldest first, then marks the caller's unread messages as read.
func (srv *chatService) ListMessages(ctx context.Context, userID, matchID uuid.UUID) ([]*entity.ChatMessage, error) {
	var (
		messages []*entity.ChatMessage
		marked   int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := authorizeChat(ctx, repoFactory.MatchRepo().FindByID, userID, matchID); err != nil {
			return err
		}

		messageRepo := repoFactory.MessageRepo()

		found, err := messageRepo.ListByMatch(ctx, matchID)
		if err != nil {
			return errors.Wrap(err, "failed to list messages")
		}
		messages = found

		count, err := messageRepo.MarkRead(ctx, matchID, userID, time.Now())
		if err != nil {
			return errors.Wrap(err, "failed to mark messages as read")
		}
		marked = count

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	if marked > 0 {
		srv.log(ctx).DebugContext(ctx, "Marked messages as read",
			slog.String("match_id", matchID.String()),
			slog.Int64("count", marked),
		)
	}

	if messages == nil {
		messages = []*entity.ChatMessage{}
	}

	return messages, nil
}

// SendMessage stores a message for the other party and opens the match on the first message.
func (srv *chatService) SendMessage(ctx context.Context, senderID, matchID uuid.UUID, body, messageType string) (*entity.ChatMessage, error) {
	if strings.TrimSpace(body) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "message body is required")
	}
	if srv.maxBodyLength > 0 && utf8.RuneCountInString(body) > srv.maxBodyLength {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "message body exceeds %d characters", srv.maxBodyLength)
	}

	msgType, ok := entity.ParseMessageType(messageType)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown message type %q", messageType)
	}

	var (
		message   *entity.ChatMessage
		activated bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		matchRepo := repoFactory.MatchRepo()

		// The row lock keeps a concurrent completion from committing between the check and the insert.
		match, err := authorizeChat(ctx, matchRepo.FindByIDForUpdate, senderID, matchID)
		if err != nil {
			return err
		}

		receiverID, _ := match.OtherParty(senderID)
		newMessage := &entity.ChatMessage{
			MatchID:     matchID,
			SenderID:    senderID,
			ReceiverID:  receiverID,
			Body:        body,
			MessageType: msgType,
			IsRead:      false,
		}

		if err := repoFactory.MessageRepo().Create(ctx, newMessage); err != nil {
			return errors.Wrap(err, "failed to create message")
		}

		if match.Status == entity.MatchStatusAccepted {
			err := matchRepo.Transition(ctx, matchID, &repository.MatchTransition{
				From: []entity.MatchStatus{entity.MatchStatusAccepted},
				To:   entity.MatchStatusActive,
			})
			switch {
			case err == nil:
				activated = true
			case errors.Is(err, repository.ErrMatchStatusConflict):
				// Already active, nothing to do.
			default:
				return errors.Wrap(err, "failed to activate match")
			}
		}
		message = newMessage

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send message")
	}

	if activated {
		srv.log(ctx).InfoContext(ctx, "Match activated by first message", slog.String("match_id", matchID.String()))
	}

	if srv.broadcaster != nil {
		srv.broadcaster.Publish(message)
	}

	event := newMatchEvent(service.EventChatMessageSent, matchID, senderID, message.ReceiverID)
	event.MessageID = message.ID.String()
	event.Preview = preview(body)
	srv.events.emit(ctx, event)

	return message, nil
}

// UnreadCount returns the number of unread messages addressed to the caller.
func (srv *chatService) UnreadCount(ctx context.Context, userID, matchID uuid.UUID) (int64, error) {
	var count int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := authorizeChat(ctx, repoFactory.MatchRepo().FindByID, userID, matchID); err != nil {
			return err
		}

		unread, err := repoFactory.MessageRepo().CountUnread(ctx, matchID, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count unread messages")
		}
		count = unread

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}

// Subscribe authorizes the caller and attaches a live listener to the match.
func (srv *chatService) Subscribe(ctx context.Context, userID, matchID uuid.UUID) (<-chan *entity.ChatMessage, func(), error) {
	if srv.broadcaster == nil {
		return nil, nil, errors.Wrap(domainerrors.ErrInternalError, "live chat is not configured")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := authorizeChat(ctx, repoFactory.MatchRepo().FindByID, userID, matchID)

		return err
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to subscribe to chat")
	}

	stream, unsubscribe := srv.broadcaster.Subscribe(matchID)

	return stream, unsubscribe, nil
}
