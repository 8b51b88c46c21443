package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Domain events of every
// aggregate added or updated through its repositories are written to the
// outbox when it commits.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	PharmacyRepository() PharmacyRepository
	DriverRepository() DriverRepository
	OutboxRepository() OutboxRepository
}
