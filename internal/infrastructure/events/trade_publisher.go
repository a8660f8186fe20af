package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/paperfx/paperfx_app/internal/core/domain"
)

// TradePublisher emits committed trades to a Kafka topic, keyed by user ID so
// one user's trades stay ordered within a partition. A nil publisher is valid
// and drops events, which keeps the trade path alive when no brokers are
// configured.
type TradePublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewTradePublisher creates a publisher for the given brokers and topic.
// With no brokers configured it returns nil.
func NewTradePublisher(brokers []string, topic string, logger *slog.Logger) *TradePublisher {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &TradePublisher{
		writer: writer,
		logger: logger.With("component", "trade_publisher", "topic", topic),
	}
}

// PublishTrade emits one committed trade. Failures are logged, never
// propagated: the trade is already persisted by the time this runs.
func (p *TradePublisher) PublishTrade(ctx context.Context, trade *domain.TradeResult) {
	if p == nil || trade == nil {
		return
	}
	payload, err := json.Marshal(trade)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to encode trade event", "trade_id", trade.TradeID, "error", err)
		return
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(trade.UserID, 10)),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "failed to publish trade event", "trade_id", trade.TradeID, "error", err)
		return
	}
	p.logger.DebugContext(ctx, "published trade event", "trade_id", trade.TradeID, "user_id", trade.UserID)
}

// Close flushes and closes the underlying writer.
func (p *TradePublisher) Close() error {
	if p == nil {
		return nil
	}
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close trade publisher: %w", err)
	}
	return nil
}
