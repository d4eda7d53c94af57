package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"mentorship/config"
	deliverycontext "mentorship/internal/delivery/context"
	"mentorship/internal/domain/constants"
	"mentorship/internal/domain/service"
	mockUsecase "mentorship/internal/mocks/usecase"
	"mentorship/internal/usecase"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32 { return nil }

func (s *fakeSession) MemberID() string { return "member" }

func (s *fakeSession) GenerationID() int32 { return 1 }

func (s *fakeSession) MarkOffset(string, int32, int64, string) {}

func (s *fakeSession) Commit() {}

func (s *fakeSession) ResetOffset(string, int32, int64, string) {}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string { return "match-events" }

func (c *fakeClaim) Partition() int32 { return 0 }

func (c *fakeClaim) InitialOffset() int64 { return 0 }

func (c *fakeClaim) HighWaterMarkOffset() int64 { return 0 }

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func createTestKafkaConsumer(t *testing.T) (*kafkaConsumer, *mockUsecase.MockNotificationUsecase) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	c := newKafkaConsumer(nil, "match-events", notificationUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.backoff = time.Millisecond

	return c, notificationUC
}

func newKafkaMessage(t *testing.T, offset int64, event *service.MatchEvent) *sarama.ConsumerMessage {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return &sarama.ConsumerMessage{
		Topic:     "match-events",
		Offset:    offset,
		Value:     data,
		Timestamp: time.Now(),
		Headers: []*sarama.RecordHeader{
			{Key: []byte(constants.AttrRequestID), Value: []byte("req-header")},
		},
	}
}

func newConsumerTestEvent() *service.MatchEvent {
	return &service.MatchEvent{
		EventID:     uuid.NewString(),
		Type:        service.EventChatMessageSent,
		MatchID:     uuid.NewString(),
		RecipientID: uuid.NewString(),
	}
}

func TestKafkaConsumer_ConsumeClaim_MarksHandledAndPermanentFailures(t *testing.T) {
	c, notificationUC := createTestKafkaConsumer(t)
	ok := newConsumerTestEvent()
	bad := newConsumerTestEvent()

	notificationUC.EXPECT().HandleMatchEvent(mock.Anything, mock.MatchedBy(func(e *service.MatchEvent) bool { return e.EventID == ok.EventID })).
		Return(&usecase.NotificationResult{Devices: 1, Sent: 1}, nil).Once()
	notificationUC.EXPECT().HandleMatchEvent(mock.Anything, mock.MatchedBy(func(e *service.MatchEvent) bool { return e.EventID == bad.EventID })).
		Return(nil, errors.New("unknown recipient")).Once()

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
	claim.messages <- newKafkaMessage(t, 1, ok)
	claim.messages <- &sarama.ConsumerMessage{Offset: 2, Value: []byte("garbage")}
	claim.messages <- newKafkaMessage(t, 3, bad)
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}

	require.NoError(t, c.ConsumeClaim(session, claim))
	assert.Equal(t, []int64{1, 2, 3}, session.marked)
}

func TestKafkaConsumer_ConsumeClaim_RetryableStopsWithoutMarking(t *testing.T) {
	c, notificationUC := createTestKafkaConsumer(t)
	event := newConsumerTestEvent()

	notificationUC.EXPECT().HandleMatchEvent(mock.Anything, mock.Anything).
		Return(nil, usecase.NewRetryableError(errors.New("fcm unavailable"))).Once()

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 2)}
	claim.messages <- newKafkaMessage(t, 7, event)
	claim.messages <- newKafkaMessage(t, 8, newConsumerTestEvent())

	session := &fakeSession{ctx: context.Background()}

	err := c.ConsumeClaim(session, claim)
	require.ErrorIs(t, err, errRedeliver)
	assert.Empty(t, session.marked)
}

func TestKafkaConsumer_HandleMessage_RecoversPanic(t *testing.T) {
	c, notificationUC := createTestKafkaConsumer(t)

	notificationUC.EXPECT().HandleMatchEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.MatchEvent) (*usecase.NotificationResult, error) {
			panic("boom")
		}).Once()

	err := c.handleMessage(context.Background(), newKafkaMessage(t, 1, newConsumerTestEvent()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered: boom")
}

func TestKafkaConsumer_HandleMessage_UsesHeaderRequestID(t *testing.T) {
	c, notificationUC := createTestKafkaConsumer(t)

	notificationUC.EXPECT().HandleMatchEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.MatchEvent) (*usecase.NotificationResult, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			assert.Equal(t, "req-header", deliverycontext.GetRequestIDFromContext(ctx))

			return &usecase.NotificationResult{}, nil
		}).Once()

	require.NoError(t, c.handleMessage(context.Background(), newKafkaMessage(t, 1, newConsumerTestEvent())))
}

func TestNewKafkaConsumer_DisabledIsNoop(t *testing.T) {
	d, err := NewKafkaConsumer(KafkaConsumerParams{
		Cfg:    &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.NoError(t, err)
	assert.IsType(t, &noopConsumer{}, d)
	assert.NoError(t, d.Serve(context.Background()))
}
