// Package rabbitmq relays outbox messages to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"meddelivery/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// DefaultExchange receives every domain event; the routing key is the
	// event name, such as "order.placed".
	DefaultExchange = "meddelivery.events"

	publishTimeout = 5 * time.Second
)

var ErrPublishIsNotConfirmed = errors.New("broker did not confirm the message")

var _ ports.MessagePublisher = (*Publisher)(nil)

// Publisher publishes persistent JSON messages on a channel in confirm mode:
// Publish returns only after the broker has taken responsibility for the
// message.
type Publisher struct {
	ch       *amqp.Channel
	exchange string
	mu       sync.Mutex
}

func NewPublisher(conn *amqp.Connection, exchange string) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}

	return &Publisher{ch: ch, exchange: exchange}, nil
}

func (p *Publisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	confirmation, err := p.ch.PublishWithDeferredConfirmWithContext(
		pubCtx,
		p.exchange,
		message.Name,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    message.ID.String(),
			Type:         message.Name,
			Timestamp:    message.OccurredAt,
			Headers: amqp.Table{
				"aggregate_id": message.AggregateID.String(),
			},
			Body: message.Payload,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s %s: %w", message.Name, message.ID, err)
	}

	acked, err := confirmation.WaitContext(pubCtx)
	if err != nil {
		return fmt.Errorf("confirm %s %s: %w", message.Name, message.ID, err)
	}
	if !acked {
		return fmt.Errorf("%w: %s %s", ErrPublishIsNotConfirmed, message.Name, message.ID)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}
