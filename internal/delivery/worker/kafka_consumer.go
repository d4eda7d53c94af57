package worker

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"mentorship/config"
	"mentorship/internal/delivery"
	"mentorship/internal/delivery/worker/handler"
	"mentorship/internal/domain/constants"
	"mentorship/internal/usecase"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultConsumeTimeout = 30 * time.Second
	redeliveryBackoff     = 2 * time.Second
)

// errRedeliver ends the consumer session so the unmarked message is fetched again.
var errRedeliver = errors.New("retryable failure, redelivering from last committed offset")

// KafkaConsumerParams holds dependencies for the Kafka consumer
type KafkaConsumerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

type kafkaConsumer struct {
	group          sarama.ConsumerGroup
	topic          string
	consumeTimeout time.Duration
	backoff        time.Duration
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewKafkaConsumer creates the match event consumer group, or a no-op delivery
// when events are not carried by Kafka.
func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	ps := params.Cfg.PubSub
	if ps == nil || ps.Provider != constants.PubSubProviderKafka || ps.Kafka == nil {
		return &noopConsumer{logger: params.Logger}, nil
	}

	group, err := sarama.NewConsumerGroup(ps.Kafka.Brokers, ps.Kafka.GroupID, newConsumerConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka consumer group")
	}

	c := newKafkaConsumer(group, ps.Kafka.Topic, params.NotificationUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

func newConsumerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Offsets.AutoCommit.Enable = true
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return cfg
}

func newKafkaConsumer(group sarama.ConsumerGroup, topic string, notificationUC usecase.NotificationUsecase, logger *slog.Logger) *kafkaConsumer {
	return &kafkaConsumer{
		group:          group,
		topic:          topic,
		consumeTimeout: defaultConsumeTimeout,
		backoff:        redeliveryBackoff,
		notificationUC: notificationUC,
		logger:         logger,
	}
}

// Serve joins the group and keeps consuming across rebalances until the group is closed.
func (c *kafkaConsumer) Serve(ctx context.Context) error {
	c.logger.Info("Starting Kafka match event consumer", slog.String("topic", c.topic))

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, c); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}

			return errors.WithStack(err)
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *kafkaConsumer) stop(context.Context) error {
	c.logger.Info("Stopping Kafka match event consumer")

	return errors.WithStack(c.group.Close())
}

// Setup implements sarama.ConsumerGroupHandler.
func (c *kafkaConsumer) Setup(sarama.ConsumerGroupSession) error { return nil }

// Cleanup implements sarama.ConsumerGroupHandler.
func (c *kafkaConsumer) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim marks every message that was handled or can never succeed.
// A retryable failure leaves the offset unmarked and ends the session after a backoff.
func (c *kafkaConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			err := c.handleMessage(session.Context(), msg)
			if err != nil && usecase.IsRetryable(err) {
				select {
				case <-time.After(c.backoff):
				case <-session.Context().Done():
				}

				return errRedeliver
			}

			session.MarkMessage(msg, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (c *kafkaConsumer) handleMessage(sessionCtx context.Context, msg *sarama.ConsumerMessage) (err error) {
	start := time.Now()
	logger := c.logger.With(
		slog.String("topic", msg.Topic),
		slog.Int("partition", int(msg.Partition)),
		slog.Int64("offset", msg.Offset),
	)

	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			length := runtime.Stack(stack, false)
			err = fmt.Errorf("panic recovered: %+v / %s", r, string(stack[:length]))
		}

		level := slog.LevelInfo
		switch {
		case err != nil && usecase.IsRetryable(err):
			level = slog.LevelError
		case err != nil:
			level = slog.LevelWarn
		}
		logger.Log(sessionCtx, level, "[Worker] Kafka message consumed",
			slog.Duration("duration", time.Since(start)),
			slog.Int64("lag_ms", start.Sub(msg.Timestamp).Milliseconds()),
			slog.Any("error", err),
		)
	}()

	event, err := handler.DecodeMatchEvent(msg.Value)
	if err != nil {
		return err
	}

	attributes := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		if h != nil {
			attributes[string(h.Key)] = string(h.Value)
		}
	}

	ctx, cancel := context.WithTimeout(sessionCtx, c.consumeTimeout)
	defer cancel()

	requestID := handler.ResolveRequestID(ctx, attributes, event)
	ctx, logger = handler.ScopeContext(ctx, logger, requestID, event)

	result, err := c.notificationUC.HandleMatchEvent(ctx, event)
	if err != nil {
		return err
	}

	logger.Debug("[Worker] Match event processed",
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
	)

	return nil
}

// noopConsumer is used when events are not delivered through Kafka
type noopConsumer struct {
	logger *slog.Logger
}

func (n *noopConsumer) Serve(context.Context) error {
	n.logger.Info("Kafka consumer is disabled")

	return nil
}
