package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"

	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
)

// Publisher sends cart events to a topic named after the event type, keyed by cart ID.
type Publisher struct {
	producer sarama.SyncProducer
	log      *slog.Logger
}

func NewPublisher(producer sarama.SyncProducer, log *slog.Logger) *Publisher {
	if log == nil {
		log = slog.Default()
	}
	return &Publisher{producer: producer, log: log}
}

func Dial(brokers []string, log *slog.Logger) (*Publisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer %v: %w", brokers, err)
	}
	return NewPublisher(producer, log), nil
}

func (p *Publisher) Publish(ctx context.Context, ev domain.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", ev.Type, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: ev.Type,
		Key:   sarama.StringEncoder(ev.CartID),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send %s: %w", ev.Type, err)
	}

	p.log.DebugContext(ctx, "published cart event",
		slog.String("topic", ev.Type),
		slog.String("cart_id", ev.CartID),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
