package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher delivers domain events. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

// AMQPPublisher publishes persistent JSON messages to a durable topic
// exchange, using the event type as routing key.
type AMQPPublisher struct {
	exchange string
	conn     *amqp.Connection

	mu sync.Mutex
	ch *amqp.Channel
}

// NewAMQPPublisher dials the broker and declares the exchange
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,      // args
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPPublisher{exchange: exchange, conn: conn, ch: ch}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx,
		p.exchange, // exchange
		event.Type, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Type:         event.Type,
			Body:         body,
		},
	)
}

// Close releases the channel and connection
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.ch.Close()
	return p.conn.Close()
}

// Emit publishes with a bounded timeout that survives request cancellation.
// Failures are logged and never reach the caller.
func Emit(ctx context.Context, pub Publisher, log *zap.Logger, event Event) {
	if pub == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := pub.Publish(ctx, event); err != nil {
		log.Warn("event publish failed", zap.String("type", event.Type), zap.Error(err))
	}
}
