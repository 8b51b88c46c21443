package commands

import (
	"errors"

	"meddelivery/internal/core/domain/model/driver"
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand creates the profile of the acting driver.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driver  kernel.Actor
	profile driver.Profile

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(actor kernel.Actor, profile driver.Profile) (RegisterDriverCommand, error) {
	command := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriver(actor),
		command.setProfile(profile),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return command, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driver.ID()
}

func (c RegisterDriverCommand) Profile() driver.Profile {
	return c.profile
}

func (c *RegisterDriverCommand) setDriver(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role() != kernel.RoleDriver {
		return errs.NewActionIsForbiddenError(actor.String(), "register as a driver")
	}
	c.driver = actor
	return nil
}

func (c *RegisterDriverCommand) setProfile(profile driver.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	c.profile = profile
	return nil
}
