package commands

import (
	"errors"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand records where the acting driver is now.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	driver   kernel.Actor
	location kernel.Location

	guard guard.ConstructorGuard
}

func NewUpdateDriverLocationCommand(actor kernel.Actor, location kernel.Location) (UpdateDriverLocationCommand, error) {
	command := UpdateDriverLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriver(actor),
		command.setLocation(location),
	); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return command, nil
}

func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

func (c UpdateDriverLocationCommand) DriverID() kernel.UUID {
	return c.driver.ID()
}

func (c UpdateDriverLocationCommand) Location() kernel.Location {
	return c.location
}

func (c *UpdateDriverLocationCommand) setDriver(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role() != kernel.RoleDriver {
		return errs.NewActionIsForbiddenError(actor.String(), "update a driver location")
	}
	c.driver = actor
	return nil
}

func (c *UpdateDriverLocationCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
