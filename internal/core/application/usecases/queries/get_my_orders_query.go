package queries

import (
	"errors"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/guard"
)

var ErrGetMyOrdersQueryIsNotConstructed = errors.New(
	"GetMyOrdersQuery must be created via NewGetMyOrdersQuery constructor",
)

// GetMyOrdersQuery lists the orders an actor takes part in, newest first:
// a customer's own orders, a pharmacy's incoming orders, a driver's
// assigned deliveries.
type GetMyOrdersQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewGetMyOrdersQuery(actor kernel.Actor) (GetMyOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetMyOrdersQuery{}, err
	}
	return GetMyOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyOrdersQueryIsNotConstructed)
}

func (q GetMyOrdersQuery) Actor() kernel.Actor {
	return q.actor
}
