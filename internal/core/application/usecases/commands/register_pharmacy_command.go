package commands

import (
	"errors"
	"strings"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"
)

var ErrRegisterPharmacyCommandIsNotConstructed = errors.New(
	"RegisterPharmacyCommand must be created via NewRegisterPharmacyCommand constructor",
)

// RegisterPharmacyCommand creates the pharmacy a pharmacy account acts as.
// The pharmacy id is the account's id.
type RegisterPharmacyCommand struct { //nolint:recvcheck //using for validation
	owner        kernel.Actor
	businessName string
	location     kernel.Location

	guard guard.ConstructorGuard
}

func NewRegisterPharmacyCommand(
	owner kernel.Actor,
	businessName string,
	location kernel.Location,
) (RegisterPharmacyCommand, error) {
	command := RegisterPharmacyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwner(owner),
		command.setBusinessName(businessName),
		command.setLocation(location),
	); err != nil {
		return RegisterPharmacyCommand{}, err
	}

	return command, nil
}

func (c RegisterPharmacyCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPharmacyCommandIsNotConstructed)
}

func (c RegisterPharmacyCommand) PharmacyID() kernel.UUID {
	return c.owner.ID()
}

func (c RegisterPharmacyCommand) BusinessName() string {
	return c.businessName
}

func (c RegisterPharmacyCommand) Location() kernel.Location {
	return c.location
}

func (c *RegisterPharmacyCommand) setOwner(owner kernel.Actor) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	if owner.Role() != kernel.RolePharmacy {
		return errs.NewActionIsForbiddenError(owner.String(), "register a pharmacy")
	}
	c.owner = owner
	return nil
}

func (c *RegisterPharmacyCommand) setBusinessName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("businessName")
	}
	c.businessName = name
	return nil
}

func (c *RegisterPharmacyCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
