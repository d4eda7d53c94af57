package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"mentorship/internal/domain/constants"
	"mentorship/internal/domain/service"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// kafkaPublisher implements EventPublisher on a Kafka topic.
// Events are keyed by match ID so every event of a match lands on one partition.
type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaProducerConfig returns the producer settings used for match events.
func NewKafkaProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 5
	cfg.Net.MaxOpenRequests = 1

	return cfg
}

// NewKafkaPublisher creates a new Kafka publisher
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (service.EventPublisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewKafkaProducerConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka producer")
	}

	return newKafkaPublisherWithProducer(producer, topic, logger), nil
}

func newKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// PublishMatchEvent publishes an event to Kafka and waits for the broker acknowledgement
func (p *kafkaPublisher) PublishMatchEvent(ctx context.Context, event *service.MatchEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := eventAttributes(event)
	headers := make([]sarama.RecordHeader, 0, len(attributes))
	for k, v := range attributes {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(event.MatchID),
		Value:   sarama.ByteEncoder(data),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return errors.Wrap(err, "failed to send kafka message")
	}

	p.logger.InfoContext(ctx, "[Kafka] Event published",
		slog.String("event_id", event.EventID),
		slog.String(constants.AttrMatchID, event.MatchID),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

// Close flushes and closes the producer
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.producer.Close())
}
