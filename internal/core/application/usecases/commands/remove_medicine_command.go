package commands

import (
	"errors"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"
)

var ErrRemoveMedicineCommandIsNotConstructed = errors.New(
	"RemoveMedicineCommand must be created via NewRemoveMedicineCommand constructor",
)

// RemoveMedicineCommand delists a medicine from the acting pharmacy's
// catalogue.
type RemoveMedicineCommand struct { //nolint:recvcheck //using for validation
	pharmacy   kernel.Actor
	medicineID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveMedicineCommand(pharmacy kernel.Actor, medicineID kernel.UUID) (RemoveMedicineCommand, error) {
	command := RemoveMedicineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPharmacy(pharmacy),
		command.setMedicineID(medicineID),
	); err != nil {
		return RemoveMedicineCommand{}, err
	}

	return command, nil
}

func (c RemoveMedicineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMedicineCommandIsNotConstructed)
}

func (c RemoveMedicineCommand) PharmacyID() kernel.UUID {
	return c.pharmacy.ID()
}

func (c RemoveMedicineCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

func (c *RemoveMedicineCommand) setPharmacy(pharmacy kernel.Actor) error {
	if err := pharmacy.Validate(); err != nil {
		return err
	}
	if pharmacy.Role() != kernel.RolePharmacy {
		return errs.NewActionIsForbiddenError(pharmacy.String(), "remove medicines")
	}
	c.pharmacy = pharmacy
	return nil
}

func (c *RemoveMedicineCommand) setMedicineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.medicineID = id
	return nil
}
