package commands

import (
	"errors"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand hands an order to a driver on behalf of its pharmacy.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	pharmacy kernel.Actor
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(orderID kernel.UUID, pharmacy kernel.Actor, driverID kernel.UUID) (AssignDriverCommand, error) {
	command := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPharmacy(pharmacy),
		command.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return command, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignDriverCommand) Pharmacy() kernel.Actor {
	return c.pharmacy
}

func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setPharmacy(pharmacy kernel.Actor) error {
	if err := pharmacy.Validate(); err != nil {
		return err
	}
	c.pharmacy = pharmacy
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
