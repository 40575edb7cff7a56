package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"logistics-service/internal/config"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// KafkaEventPublisher implements EventPublisher using a sarama sync producer
type KafkaEventPublisher struct {
	producer sarama.SyncProducer
	logger   *zap.Logger
	config   *config.Config
}

// NewKafkaEventPublisher creates a new Kafka event publisher. The producer is
// idempotent and waits for full acknowledgement unless configured otherwise.
func NewKafkaEventPublisher(cfg *config.Config, logger *zap.Logger) (*KafkaEventPublisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.ClientID = cfg.KafkaClientID
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Retry.Max = cfg.KafkaRetries
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	switch cfg.KafkaAcks {
	case "0":
		saramaConfig.Producer.RequiredAcks = sarama.NoResponse
	case "1":
		saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	default:
		saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	}

	producer, err := sarama.NewSyncProducer(cfg.KafkaBrokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaEventPublisher{
		producer: producer,
		logger:   logger,
		config:   cfg,
	}, nil
}

// Publish publishes an event to its topic with retries and exponential backoff
func (p *KafkaEventPublisher) Publish(ctx context.Context, event interface{}) error {
	topic, err := p.topicForEvent(event)
	if err != nil {
		return err
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(eventJSON),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(eventType(event))},
			{Key: []byte("event-id"), Value: []byte(uuid.New().String())},
			{Key: []byte("timestamp"), Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	}
	if key := partitionKey(event); key != "" {
		message.Key = sarama.StringEncoder(key)
	}

	maxRetries := p.config.KafkaRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	baseDelay := 100 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		partition, offset, err := p.producer.SendMessage(message)
		if err == nil {
			p.logger.Info("Event published to Kafka",
				zap.String("topic", topic),
				zap.Int32("partition", partition),
				zap.Int64("offset", offset),
				zap.String("event-type", eventType(event)),
				zap.Int("attempt", attempt+1),
			)
			return nil
		}

		lastErr = err
		p.logger.Warn("Failed to publish event to Kafka, retrying",
			zap.String("topic", topic),
			zap.Error(err),
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", maxRetries),
		)

		if attempt < maxRetries-1 {
			delay := baseDelay * time.Duration(1<<uint(attempt))
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled during backoff: %w", ctx.Err())
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("failed to publish event to Kafka after %d attempts: %w", maxRetries, lastErr)
}

// Close closes the Kafka producer
func (p *KafkaEventPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// topicForEvent routes each event family to its topic
func (p *KafkaEventPublisher) topicForEvent(event interface{}) (string, error) {
	switch event.(type) {
	case OrderCreatedEvent:
		return p.config.KafkaTopicOrders, nil
	case ShipmentCreatedEvent, ShipmentLocationUpdatedEvent:
		return p.config.KafkaTopicShipments, nil
	case InventoryItemAddedEvent, StockUpdatedEvent:
		return p.config.KafkaTopicInventory, nil
	default:
		return "", fmt.Errorf("unknown event type: %T", event)
	}
}

func eventType(event interface{}) string {
	switch event.(type) {
	case OrderCreatedEvent:
		return "OrderCreated"
	case ShipmentCreatedEvent:
		return "ShipmentCreated"
	case ShipmentLocationUpdatedEvent:
		return "ShipmentLocationUpdated"
	case InventoryItemAddedEvent:
		return "InventoryItemAdded"
	case StockUpdatedEvent:
		return "StockUpdated"
	default:
		return "Unknown"
	}
}

// partitionKey keeps all events for one entity on one partition
func partitionKey(event interface{}) string {
	switch e := event.(type) {
	case OrderCreatedEvent:
		return e.OrderID
	case ShipmentCreatedEvent:
		return e.ShipmentID
	case ShipmentLocationUpdatedEvent:
		return e.ShipmentID
	case InventoryItemAddedEvent:
		return e.ItemID
	case StockUpdatedEvent:
		return e.ItemID
	default:
		return ""
	}
}
