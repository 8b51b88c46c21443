// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work and the outbound message publisher.
package ports

import (
	"context"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their items.
type OrderRepository interface {
	// Add stores a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores the new state of an existing order. It fails with
	// errs.ErrVersionIsInvalid when the row changed since the order was read.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order, or fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
