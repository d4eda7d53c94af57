package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mentorship/config"
	"mentorship/internal/domain/service"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.MatchEvent {
	return &service.MatchEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        service.EventMentorshipAccepted,
		MatchID:     "match-1",
		ActorID:     "mentor-user",
		RecipientID: "mentee-user",
		OccurredAt:  "2026-01-01T00:00:00Z",
	}
}

func TestLocalHTTPPublisher_PublishMatchEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishMatchEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "match-1", received.Message.OrderingKey)
	assert.Equal(t, "mentorship.accepted", received.Message.Attributes["event_type"])
	assert.Equal(t, "match-1", received.Message.Attributes["match_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.MatchEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, "mentee-user", event.RecipientID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishMatchEvent(context.Background(), testEvent())
	assert.ErrorContains(t, err, "503")
}

func TestKafkaPublisher_PublishMatchEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewKafkaProducerConfig())
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "match-events", msg.Topic)

		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "match-1", string(key))

		headers := map[string]string{}
		for _, h := range msg.Headers {
			headers[string(h.Key)] = string(h.Value)
		}
		assert.Equal(t, "req-1", headers["request_id"])
		assert.Equal(t, "mentorship.accepted", headers["event_type"])

		return nil
	})

	publisher := newKafkaPublisherWithProducer(producer, "match-events", testLogger())
	require.NoError(t, publisher.PublishMatchEvent(context.Background(), testEvent()))
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewKafkaProducerConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)

	publisher := newKafkaPublisherWithProducer(producer, "match-events", testLogger())
	err := publisher.PublishMatchEvent(context.Background(), testEvent())
	assert.ErrorIs(t, err, sarama.ErrNotLeaderForPartition)
	require.NoError(t, publisher.Close())
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
	}{
		{name: "unset uses noop", pubsub: nil},
		{name: "empty provider uses noop", pubsub: &config.PubSubConfig{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "kafka without brokers", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: testLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
		})
	}
}
