package impl

import (
	"context"
	"testing"
	"time"

	"mentorship/internal/domain/entity"
	domainerrors "mentorship/internal/domain/errors"
	"mentorship/internal/domain/repository"
	"mentorship/internal/domain/service"
	mockRepo "mentorship/internal/mocks/repository"
	mockService "mentorship/internal/mocks/service"
	"mentorship/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// chatServiceFixtures holds all test dependencies for chat service tests.
type chatServiceFixtures struct {
	service     usecase.ChatUsecase
	txManager   *mockRepo.MockTransactionManager
	broadcaster *mockService.MockChatBroadcaster
	publisher   *mockService.MockEventPublisher
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	broadcaster := mockService.NewMockChatBroadcaster(t)
	publisher := mockService.NewMockEventPublisher(t)

	srv := NewChatService(ChatServiceParams{
		TxManager:      txManager,
		Broadcaster:    broadcaster,
		EventPublisher: publisher,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return chatServiceFixtures{
		service:     srv,
		txManager:   txManager,
		broadcaster: broadcaster,
		publisher:   publisher,
	}
}

func newChatMatch(status entity.MatchStatus) *entity.Match {
	return newTestMatch(newTestMentor(uuid.New()), newTestMentee(uuid.New()), status)
}

func TestChatService_ListMessages_ReturnsPreReadState(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	match := newChatMatch(entity.MatchStatusActive)
	caller := match.MenteeUserID
	history := []*entity.ChatMessage{
		{ID: uuid.New(), MatchID: match.ID, SenderID: match.MentorUserID, ReceiverID: caller, Body: "hi", IsRead: false},
		{ID: uuid.New(), MatchID: match.ID, SenderID: caller, ReceiverID: match.MentorUserID, Body: "hello", IsRead: true},
	}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		matchRepo := mockRepo.NewMockMatchRepository(t)
		messageRepo := mockRepo.NewMockMessageRepository(t)
		factory.EXPECT().MatchRepo().Return(matchRepo)
		factory.EXPECT().MessageRepo().Return(messageRepo)
		matchRepo.EXPECT().FindByID(ctx, match.ID).Return(match, nil)
		messageRepo.EXPECT().ListByMatch(ctx, match.ID).Return(history, nil)
		messageRepo.EXPECT().MarkRead(ctx, match.ID, caller, mock.AnythingOfType("time.Time")).Return(1, nil)
	})

	got, err := fx.service.ListMessages(ctx, caller, match.ID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[0].IsRead, "messages reflect the state before marking")
	assert.Equal(t, "hi", got[0].Body)
}

func TestChatService_ListMessages_Unauthorized(t *testing.T) {
	tests := []struct {
		name   string
		status entity.MatchStatus
		caller func(m *entity.Match) uuid.UUID
		found  bool
	}{
		{"pending match", entity.MatchStatusPending, func(m *entity.Match) uuid.UUID { return m.MenteeUserID }, true},
		{"completed match", entity.MatchStatusCompleted, func(m *entity.Match) uuid.UUID { return m.MentorUserID }, true},
		{"declined match", entity.MatchStatusDeclined, func(m *entity.Match) uuid.UUID { return m.MentorUserID }, true},
		{"stranger", entity.MatchStatusActive, func(*entity.Match) uuid.UUID { return uuid.New() }, true},
		{"missing match", entity.MatchStatusActive, func(m *entity.Match) uuid.UUID { return m.MenteeUserID }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestChatService(t)

			ctx := context.Background()
			match := newChatMatch(tt.status)

			expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				matchRepo := mockRepo.NewMockMatchRepository(t)
				factory.EXPECT().MatchRepo().Return(matchRepo)
				if tt.found {
					matchRepo.EXPECT().FindByID(ctx, match.ID).Return(match, nil)
				} else {
					matchRepo.EXPECT().FindByID(ctx, match.ID).Return(nil, repository.ErrMatchNotFound)
				}
			})

			_, err := fx.service.ListMessages(ctx, tt.caller(match), match.ID)

			assert.True(t, errors.Is(err, domainerrors.ErrUnauthorizedChatAccess), "got %v", err)
		})
	}
}

func TestChatService_SendMessage_FirstMessageActivatesMatch(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	match := newChatMatch(entity.MatchStatusAccepted)
	sender := match.MentorUserID

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		matchRepo := mockRepo.NewMockMatchRepository(t)
		messageRepo := mockRepo.NewMockMessageRepository(t)
		factory.EXPECT().MatchRepo().Return(matchRepo)
		factory.EXPECT().MessageRepo().Return(messageRepo)
		matchRepo.EXPECT().FindByIDForUpdate(ctx, match.ID).Return(match, nil)
		messageRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(m *entity.ChatMessage) bool {
				return m.ReceiverID == match.MenteeUserID && !m.IsRead && m.MessageType == entity.MessageTypeText
			})).
			Run(func(_ context.Context, m *entity.ChatMessage) {
				m.ID = uuid.New()
				m.CreatedAt = time.Now()
			}).
			Return(nil)
		matchRepo.EXPECT().
			Transition(ctx, match.ID, mock.MatchedBy(func(tr *repository.MatchTransition) bool {
				return tr.To == entity.MatchStatusActive && tr.From[0] == entity.MatchStatusAccepted
			})).
			Return(nil)
	})
	fx.broadcaster.EXPECT().Publish(mock.AnythingOfType("*entity.ChatMessage")).Return()
	fx.publisher.EXPECT().
		PublishMatchEvent(mock.Anything, mock.MatchedBy(func(e *service.MatchEvent) bool {
			return e.Type == service.EventChatMessageSent && e.RecipientID == match.MenteeUserID.String() && e.Preview == "Welcome!"
		})).
		Return(nil)

	msg, err := fx.service.SendMessage(ctx, sender, match.ID, "Welcome!", "")

	require.NoError(t, err)
	assert.Equal(t, match.MenteeUserID, msg.ReceiverID)
	assert.Equal(t, sender, msg.SenderID)
	assert.False(t, msg.IsRead)
}

func TestChatService_SendMessage_ActiveMatchStaysActive(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	match := newChatMatch(entity.MatchStatusActive)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		matchRepo := mockRepo.NewMockMatchRepository(t)
		messageRepo := mockRepo.NewMockMessageRepository(t)
		factory.EXPECT().MatchRepo().Return(matchRepo)
		factory.EXPECT().MessageRepo().Return(messageRepo)
		matchRepo.EXPECT().FindByIDForUpdate(ctx, match.ID).Return(match, nil)
		messageRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ChatMessage")).Return(nil)
	})
	fx.broadcaster.EXPECT().Publish(mock.Anything).Return()
	fx.publisher.EXPECT().PublishMatchEvent(mock.Anything, mock.Anything).Return(nil)

	msg, err := fx.service.SendMessage(ctx, match.MenteeUserID, match.ID, "func main() {}", "code")

	require.NoError(t, err)
	assert.Equal(t, entity.MessageTypeCode, msg.MessageType)
	assert.Equal(t, match.MentorUserID, msg.ReceiverID)
}

func TestChatService_SendMessage_ConcurrentActivationIsTolerated(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	match := newChatMatch(entity.MatchStatusAccepted)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		matchRepo := mockRepo.NewMockMatchRepository(t)
		messageRepo := mockRepo.NewMockMessageRepository(t)
		factory.EXPECT().MatchRepo().Return(matchRepo)
		factory.EXPECT().MessageRepo().Return(messageRepo)
		matchRepo.EXPECT().FindByIDForUpdate(ctx, match.ID).Return(match, nil)
		messageRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ChatMessage")).Return(nil)
		matchRepo.EXPECT().Transition(ctx, match.ID, mock.Anything).Return(repository.ErrMatchStatusConflict)
	})
	fx.broadcaster.EXPECT().Publish(mock.Anything).Return()
	fx.publisher.EXPECT().PublishMatchEvent(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.SendMessage(ctx, match.MenteeUserID, match.ID, "hi", "text")

	require.NoError(t, err)
}

func TestChatService_SendMessage_Validation(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		messageType string
	}{
		{"empty body", "", "text"},
		{"whitespace body", "  \n ", "text"},
		{"body too long", "this message is longer than twenty", "text"},
		{"unknown type", "hi", "video"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestChatService(t)

			_, err := fx.service.SendMessage(context.Background(), uuid.New(), uuid.New(), tt.body, tt.messageType)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
		})
	}
}

func TestChatService_SendMessage_PendingMatch(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	match := newChatMatch(entity.MatchStatusPending)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		matchRepo := mockRepo.NewMockMatchRepository(t)
		factory.EXPECT().MatchRepo().Return(matchRepo)
		matchRepo.EXPECT().FindByIDForUpdate(ctx, match.ID).Return(match, nil)
	})

	_, err := fx.service.SendMessage(ctx, match.MenteeUserID, match.ID, "hi", "")

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorizedChatAccess))
}

func TestChatService_SendMessage_CompletedUnderLock(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	match := newChatMatch(entity.MatchStatusCompleted)

	// The locked read sees the completion that committed first, so nothing is stored.
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		matchRepo := mockRepo.NewMockMatchRepository(t)
		factory.EXPECT().MatchRepo().Return(matchRepo)
		matchRepo.EXPECT().FindByIDForUpdate(ctx, match.ID).Return(match, nil).Once()
	})

	msg, err := fx.service.SendMessage(ctx, match.MentorUserID, match.ID, "one more thing", "")

	assert.Nil(t, msg)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorizedChatAccess))
}

func TestChatService_UnreadCount(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	match := newChatMatch(entity.MatchStatusActive)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		matchRepo := mockRepo.NewMockMatchRepository(t)
		messageRepo := mockRepo.NewMockMessageRepository(t)
		factory.EXPECT().MatchRepo().Return(matchRepo)
		factory.EXPECT().MessageRepo().Return(messageRepo)
		matchRepo.EXPECT().FindByID(ctx, match.ID).Return(match, nil)
		messageRepo.EXPECT().CountUnread(ctx, match.ID, match.MentorUserID).Return(3, nil)
	})

	count, err := fx.service.UnreadCount(ctx, match.MentorUserID, match.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestChatService_Subscribe(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	match := newChatMatch(entity.MatchStatusActive)
	stream := make(chan *entity.ChatMessage)
	unsubscribed := false

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		matchRepo := mockRepo.NewMockMatchRepository(t)
		factory.EXPECT().MatchRepo().Return(matchRepo)
		matchRepo.EXPECT().FindByID(ctx, match.ID).Return(match, nil)
	})
	fx.broadcaster.EXPECT().Subscribe(match.ID).Return(stream, func() { unsubscribed = true })

	got, unsubscribe, err := fx.service.Subscribe(ctx, match.MenteeUserID, match.ID)

	require.NoError(t, err)
	assert.NotNil(t, got)
	unsubscribe()
	assert.True(t, unsubscribed)
}
