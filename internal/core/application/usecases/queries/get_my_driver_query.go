package queries

import (
	"errors"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"
)

var ErrGetMyDriverQueryIsNotConstructed = errors.New(
	"GetMyDriverQuery must be created via NewGetMyDriverQuery constructor",
)

// GetMyDriverQuery reads the caller's own driver profile.
type GetMyDriverQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMyDriverQuery(actor kernel.Actor) (GetMyDriverQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetMyDriverQuery{}, err
	}
	if actor.Role() != kernel.RoleDriver {
		return GetMyDriverQuery{}, errs.NewActionIsForbiddenError(actor.String(), "view driver profile")
	}
	return GetMyDriverQuery{driverID: actor.ID(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetMyDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetMyDriverQueryIsNotConstructed)
}

func (q GetMyDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}
