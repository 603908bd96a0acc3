// Package kafka publishes deal events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
	"github.com/SscSPs/fx_deals_warehouse/internal/core/ports/messaging"
)

// DealEventProducer sends deal events synchronously, keyed by deal unique ID so that
// every event for one deal lands on the same partition.
type DealEventProducer struct {
	producer sarama.SyncProducer
	topic    string
	log      *slog.Logger
}

var _ messaging.DealEventPublisher = (*DealEventProducer)(nil)

// NewConfig returns the producer settings used for deal events.
func NewConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Timeout = 5 * time.Second
	return config
}

// NewDealEventProducer connects to brokers and publishes to topic.
func NewDealEventProducer(brokers []string, topic string, log *slog.Logger) (*DealEventProducer, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("Kafka producer created", slog.String("topic", topic), slog.Any("brokers", brokers))
	return NewDealEventProducerWith(producer, topic, log), nil
}

// NewDealEventProducerWith wraps an existing producer.
func NewDealEventProducerWith(producer sarama.SyncProducer, topic string, log *slog.Logger) *DealEventProducer {
	return &DealEventProducer{producer: producer, topic: topic, log: log}
}

// PublishDealRecorded sends event and waits for the broker acknowledgement or ctx cancellation.
func (p *DealEventProducer) PublishDealRecorded(ctx context.Context, event domain.DealRecordedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal deal recorded event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.DealUniqueID),
		Value: sarama.ByteEncoder(eventData),
	}

	type result struct {
		partition int32
		offset    int64
		err       error
	}

	resultCh := make(chan result, 1)
	go func() {
		partition, offset, err := p.producer.SendMessage(msg)
		resultCh <- result{partition, offset, err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			p.log.Error("Kafka send failed",
				slog.String("deal_unique_id", event.DealUniqueID),
				slog.String("error", res.err.Error()))
			return fmt.Errorf("send deal recorded event: %w", res.err)
		}
		p.log.Debug("Kafka send succeeded",
			slog.String("deal_unique_id", event.DealUniqueID),
			slog.Int("partition", int(res.partition)),
			slog.Int64("offset", res.offset))
		return nil

	case <-ctx.Done():
		p.log.Warn("Kafka send cancelled", slog.String("deal_unique_id", event.DealUniqueID))
		return ctx.Err()
	}
}

func (p *DealEventProducer) Close() error {
	if p.producer == nil {
		return nil
	}
	p.log.Info("Closing kafka producer")
	return p.producer.Close()
}

// NoOpPublisher drops events. It is used when Kafka is disabled.
type NoOpPublisher struct {
	log *slog.Logger
}

var _ messaging.DealEventPublisher = (*NoOpPublisher)(nil)

func NewNoOpPublisher(log *slog.Logger) *NoOpPublisher {
	return &NoOpPublisher{log: log}
}

func (p *NoOpPublisher) PublishDealRecorded(_ context.Context, event domain.DealRecordedEvent) error {
	p.log.Debug("Kafka disabled, deal recorded event not sent", slog.String("deal_unique_id", event.DealUniqueID))
	return nil
}

func (p *NoOpPublisher) Close() error {
	return nil
}
