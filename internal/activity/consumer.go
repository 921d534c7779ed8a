package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fyyur/pkg/logger"

	"github.com/IBM/sarama"
)

// Handler processes one decoded listing event
type Handler func(ctx context.Context, event ListingEvent) error

type ConsumerConfig struct {
	Brokers          []string
	GroupID          string
	Topics           []string
	ClientID         string
	SessionTimeoutMs int
	HeartbeatMs      int
	OffsetOldest     bool
}

func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:          []string{"localhost:9092"},
		GroupID:          "fyyur-activity-log",
		Topics:           []string{"fyyur.listings"},
		ClientID:         "fyyur-activity",
		SessionTimeoutMs: 30000,
		HeartbeatMs:      3000,
		OffsetOldest:     true,
	}
}

// Consumer reads listing events with a sarama consumer group
type Consumer struct {
	group        sarama.ConsumerGroup
	topics       []string
	handler      Handler
	retryBackoff time.Duration
}

// defaultRetryBackoff is the pause after a failed Consume before rejoining
const defaultRetryBackoff = time.Second

func NewConsumer(config *ConsumerConfig, handler Handler) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.ClientID = config.ClientID
	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(config.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	group, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return NewConsumerFromGroup(group, config.Topics, handler), nil
}

// NewConsumerFromGroup wraps an existing consumer group
func NewConsumerFromGroup(group sarama.ConsumerGroup, topics []string, handler Handler) *Consumer {
	return &Consumer{
		group:        group,
		topics:       topics,
		handler:      handler,
		retryBackoff: defaultRetryBackoff,
	}
}

// Run consumes until ctx is cancelled
func (c *Consumer) Run(ctx context.Context) error {
	log := logger.GetDefault()
	log.Info("📥 Activity consumer started", slog.Any("topics", c.topics))

	go func() {
		for err := range c.group.Errors() {
			log.Error("📥 Consumer group error", slog.Any("error", err))
		}
	}()

	handler := &groupHandler{handle: c.handler}
	for {
		err := c.group.Consume(ctx, c.topics, handler)
		if ctx.Err() != nil {
			return nil
		}
		if errors.Is(err, sarama.ErrClosedConsumerGroup) {
			return nil
		}
		if err != nil {
			log.Error("📥 Error consuming messages", slog.Any("error", err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.retryBackoff):
			}
		}
	}
}

func (c *Consumer) Close() error {
	if err := c.group.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

// LogHandler writes every event to the default logger
func LogHandler(ctx context.Context, event ListingEvent) error {
	logger.GetDefault().InfoContext(ctx, "Listing Activity",
		slog.String("event_id", event.ID.String()),
		slog.String("type", string(event.Type)),
		slog.String("entity", event.Entity),
		slog.Uint64("entity_id", uint64(event.EntityID)),
		slog.String("name", event.Name),
		slog.Time("occurred_at", event.OccurredAt),
	)
	return nil
}

type groupHandler struct {
	handle Handler
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok || message == nil {
				return nil
			}
			if err := h.process(session.Context(), message); err != nil {
				logger.GetDefault().Error("📥 Error processing message",
					slog.Int64("offset", message.Offset),
					slog.Any("error", err),
				)
			}
			// Undecodable messages are skipped rather than redelivered forever
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *groupHandler) process(ctx context.Context, message *sarama.ConsumerMessage) error {
	event, err := FromJSON(message.Value)
	if err != nil {
		return fmt.Errorf("failed to decode listing event: %w", err)
	}
	return h.handle(ctx, event)
}
