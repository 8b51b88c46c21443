package ports

import (
	"context"
	"time"

	"meddelivery/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized domain event waiting to be relayed.
type OutboxMessage struct {
	ID          kernel.UUID
	Name        string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository stores domain events in the same transaction as the
// aggregates that raised them.
type OutboxRepository interface {
	Add(ctx context.Context, messages ...OutboxMessage) error

	// GetUnpublished locks and returns up to limit messages, oldest first.
	// Rows locked by another relay are skipped.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// MessagePublisher delivers one outbox message to the message broker.
type MessagePublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
