package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate. Events are serialized to
// JSON when they are written to the outbox, so implementations carry their
// data in exported fields.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// AggregateRoot is implemented by aggregates that record domain events.
type AggregateRoot interface {
	ID() UUID
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}
