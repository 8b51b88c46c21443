// Package commands contains the operations that change state. Every handler
// validates its command, opens a unit of work, loads the aggregates it needs,
// lets them decide, stores them and commits. Nothing is retried.
package commands

import (
	"context"

	"meddelivery/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PharmacyRepoFactory interface {
		PharmacyRepository() ports.PharmacyRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW is used by commands that only change one order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PharmacyUoW is used by catalogue commands.
	PharmacyUoW interface {
		TxManager
		PharmacyRepoFactory
	}

	PharmacyUoWFactory interface {
		Create() PharmacyUoW
	}

	// UoW spans an order and its pharmacy, as placing an order reserves stock.
	UoW interface {
		TxManager
		OrderRepoFactory
		PharmacyRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// DriverUoW is used by commands that only change a driver profile.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// AssignmentUoW reads the driver an order is handed to.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// OutboxUoW is used by the relay that publishes stored domain events.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
