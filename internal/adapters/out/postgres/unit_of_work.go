// Package postgres implements the unit of work over a GORM transaction.
//
// Repositories handed out by a unit of work share its transaction and report
// every aggregate they add or update. On Commit the domain events of those
// aggregates are serialized into the outbox table inside the same
// transaction, so a state change and the event announcing it are stored
// together or not at all.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"meddelivery/internal/adapters/out/postgres/driverrepo"
	"meddelivery/internal/adapters/out/postgres/orderrepo"
	"meddelivery/internal/adapters/out/postgres/outboxrepo"
	"meddelivery/internal/adapters/out/postgres/pharmacyrepo"
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates one unit of work per command.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		tracked: make(map[kernel.UUID]kernel.AggregateRoot),
	}
}

// GormUnitOfWork is not safe for concurrent use.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB

	tracked map[kernel.UUID]kernel.AggregateRoot
	order   []kernel.UUID
}

// Begin starts the transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the pending domain events to the outbox and commits. Events
// are cleared from the aggregates only once the commit succeeded.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	messages, err := uow.outboxMessages()
	if err != nil {
		return err
	}
	if err = outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, messages...); err != nil {
		return err
	}

	err = uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, id := range uow.order {
		uow.tracked[id].ClearDomainEvents()
	}
	uow.tracked = make(map[kernel.UUID]kernel.AggregateRoot)
	uow.order = nil

	return nil
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction
// when nothing is open, which is the normal case after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = make(map[kernel.UUID]kernel.AggregateRoot)
	uow.order = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PharmacyRepository() ports.PharmacyRepository {
	return pharmacyrepo.NewGormPharmacyRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(aggregate kernel.AggregateRoot) {
	id := aggregate.ID()
	if _, ok := uow.tracked[id]; !ok {
		uow.order = append(uow.order, id)
	}
	uow.tracked[id] = aggregate
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) outboxMessages() ([]ports.OutboxMessage, error) {
	var messages []ports.OutboxMessage
	for _, id := range uow.order {
		for _, event := range uow.tracked[id].DomainEvents() {
			payload, err := json.Marshal(event)
			if err != nil {
				return nil, fmt.Errorf("marshal %s: %w", event.EventName(), err)
			}
			messages = append(messages, ports.OutboxMessage{
				ID:          event.EventID(),
				Name:        event.EventName(),
				AggregateID: event.AggregateID(),
				Payload:     payload,
				OccurredAt:  event.OccurredAt(),
			})
		}
	}
	return messages, nil
}
