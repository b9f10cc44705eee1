package kafka

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/turtacn/LegalAid-Assistant/internal/config"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
)

// Defaults applied when the config leaves a knob unset.
const (
	defaultBatchTimeout = time.Second
	defaultMaxRetries   = 3
	publishTimeout      = 5 * time.Second
)

// Publisher emits analytics events.  The application layer holds this
// interface so the Kafka dependency stays optional.
type Publisher interface {
	Publish(ctx context.Context, event Event)
	Close() error
}

// messageWriter abstracts kafka.Writer for tests.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer writes events to a single topic, keyed by session id.
type Producer struct {
	writer messageWriter
	logger logging.Logger
	topic  string
	closed atomic.Bool
	sent   atomic.Int64
	failed atomic.Int64
}

// NewProducer builds a Producer from cfg.
func NewProducer(cfg config.KafkaConfig, logger logging.Logger) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New(errors.CodeValidation, "kafka brokers required")
	}
	if cfg.Topic == "" {
		return nil, errors.New(errors.CodeValidation, "kafka topic required")
	}

	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = defaultBatchTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		MaxAttempts:  maxRetries + 1,
		BatchTimeout: batchTimeout,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("kafka producer ready",
		logging.Any("brokers", cfg.Brokers),
		logging.String("topic", cfg.Topic),
	)
	return &Producer{writer: writer, logger: logger, topic: cfg.Topic}, nil
}

// NewProducerWithWriter wraps an existing writer.  Tests use this.
func NewProducerWithWriter(writer messageWriter, topic string, logger logging.Logger) *Producer {
	return &Producer{writer: writer, logger: logger, topic: topic}
}

// Publish serializes and writes one event.  Failures are logged and counted,
// never propagated.
func (p *Producer) Publish(ctx context.Context, event Event) {
	if p.closed.Load() {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.failed.Add(1)
		p.logger.Error("failed to serialize analytics event", logging.Err(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: value,
		Time:  event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.failed.Add(1)
		p.logger.Warn("failed to publish analytics event",
			logging.String("type", string(event.Type)),
			logging.Err(err),
		)
		return
	}
	p.sent.Add(1)
}

// Sent reports the number of successfully published events.
func (p *Producer) Sent() int64 { return p.sent.Load() }

// Failed reports the number of dropped events.
func (p *Producer) Failed() int64 { return p.failed.Load() }

// Close flushes and closes the writer exactly once.
func (p *Producer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := p.writer.Close()
	p.logger.Info("kafka producer closed", logging.Int64("sent", p.sent.Load()))
	return err
}

// NopPublisher discards every event.  Used when analytics is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}
func (NopPublisher) Close() error                   { return nil }
