package queries

import (
	"errors"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"
)

// AvailableOrdersLimit caps how many unassigned orders a driver is shown.
const AvailableOrdersLimit = 100

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery lists accepted orders that no driver has yet.
// Only drivers may ask.
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAvailableOrdersQuery(driver kernel.Actor) (GetAvailableOrdersQuery, error) {
	if err := driver.Validate(); err != nil {
		return GetAvailableOrdersQuery{}, err
	}
	if driver.Role() != kernel.RoleDriver {
		return GetAvailableOrdersQuery{}, errs.NewActionIsForbiddenError(driver.String(), "list available orders")
	}
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}, nil
}

func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}
