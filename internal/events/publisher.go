package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/lortega/storefront-backend/pkg/config"
	"github.com/lortega/storefront-backend/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// Event names emitted by the cart service.
const (
	CartProductAdded = "cart.product_added"
	CartItemUpdated  = "cart.item_updated"
	CartItemRemoved  = "cart.item_removed"
	CartCleared      = "cart.cleared"
)

// CartEvent is the payload published for every cart mutation.
type CartEvent struct {
	Name       string    `json:"name"`
	UserID     int64     `json:"user_id"`
	ProductID  int64     `json:"product_id,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits cart events to downstream consumers.
type Publisher interface {
	PublishCartEvent(ctx context.Context, event CartEvent) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
	logg   *logger.Logger
}

// NewKafkaPublisher builds a publisher writing to the configured cart topic.
// Returns nil when no brokers are configured so callers can skip wiring.
func NewKafkaPublisher(cfg config.EventsConfig, logg *logger.Logger) Publisher {
	brokers := cfg.BrokerList()
	if len(brokers) == 0 {
		return nil
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  cfg.CartTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &kafkaPublisher{writer: writer, logg: logg}
}

func (p *kafkaPublisher) PublishCartEvent(ctx context.Context, event CartEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal cart event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write cart event: %w", err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
