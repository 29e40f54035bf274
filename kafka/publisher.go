package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/inventory-management/pkg/logger"
)

// Publisher publishes inventory events
type Publisher interface {
	PublishInventoryLogRecorded(ctx context.Context, event InventoryLogRecordedEvent) error
	PublishInventoryItemChanged(ctx context.Context, event InventoryItemChangedEvent) error
	Close() error
}

// SaramaPublisher publishes events through a Kafka sync producer
type SaramaPublisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// Publishing happens on the request path, so a broken broker may delay a write
// response by at most about publishTimeout per attempt.
const (
	publishTimeout = 2 * time.Second
	publishRetries = 1
)

func newProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = publishRetries
	config.Producer.Retry.Backoff = 100 * time.Millisecond
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Timeout = publishTimeout
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000
	config.Net.DialTimeout = publishTimeout
	config.Net.ReadTimeout = publishTimeout
	config.Net.WriteTimeout = publishTimeout
	config.Metadata.Retry.Max = publishRetries
	config.Metadata.Retry.Backoff = 100 * time.Millisecond
	return config
}

// NewSaramaPublisher creates a new Kafka publisher
func NewSaramaPublisher(brokers []string) (*SaramaPublisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, newProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return NewSaramaPublisherWithProducer(producer, brokers), nil
}

// NewSaramaPublisherWithProducer creates a publisher on top of an existing producer
func NewSaramaPublisherWithProducer(producer sarama.SyncProducer, brokers []string) *SaramaPublisher {
	return &SaramaPublisher{
		producer: producer,
		brokers:  brokers,
	}
}

// PublishInventoryLogRecorded publishes an inventory log event with tracing
func (p *SaramaPublisher) PublishInventoryLogRecorded(ctx context.Context, event InventoryLogRecordedEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	event.EventType = EventTypeInventoryLogRecorded
	event.Timestamp = time.Now()

	key := fmt.Sprintf("log_%d", event.LogID)
	if event.ProductID != nil {
		key = fmt.Sprintf("product_%d", *event.ProductID)
	}

	return p.publish(ctx, TopicInventoryLogRecorded, event.EventType, event.EventID, key, event,
		attribute.Int64("inventory_log.id", int64(event.LogID)),
	)
}

// PublishInventoryItemChanged publishes an inventory item change event with tracing
func (p *SaramaPublisher) PublishInventoryItemChanged(ctx context.Context, event InventoryItemChangedEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	event.EventType = EventTypeInventoryItemChanged
	event.Timestamp = time.Now()

	return p.publish(ctx, TopicInventoryItemChanged, event.EventType, event.EventID,
		fmt.Sprintf("product_%d", event.ProductID), event,
		attribute.Int64("product.id", int64(event.ProductID)),
		attribute.String("inventory.stock", event.Stock),
		attribute.String("inventory.change", event.Change),
	)
}

func (p *SaramaPublisher) publish(ctx context.Context, topic, eventType, eventID, key string, event interface{}, attrs ...attribute.KeyValue) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
		),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Trace context travels in the message headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Error(ctx).
			Err(err).
			Str("topic", topic).
			Str("event_id", eventID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Info(ctx).
		Str("event_id", eventID).
		Str("event_type", eventType).
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close closes the Kafka producer
func (p *SaramaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

// PublishInventoryLogRecorded does nothing
func (NopPublisher) PublishInventoryLogRecorded(context.Context, InventoryLogRecordedEvent) error {
	return nil
}

// PublishInventoryItemChanged does nothing
func (NopPublisher) PublishInventoryItemChanged(context.Context, InventoryItemChangedEvent) error {
	return nil
}

// Close does nothing
func (NopPublisher) Close() error { return nil }

// NewPublisher returns a Kafka publisher for brokers, or a NopPublisher when there are none
func NewPublisher(brokers []string) (Publisher, error) {
	if len(brokers) == 0 {
		logger.Logger.Info().Msg("No Kafka brokers configured, event publishing disabled")
		return NopPublisher{}, nil
	}
	return NewSaramaPublisher(brokers)
}
