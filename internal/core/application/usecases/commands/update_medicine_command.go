package commands

import (
	"errors"
	"fmt"
	"strings"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateMedicineCommandIsNotConstructed = errors.New(
	"UpdateMedicineCommand must be created via NewUpdateMedicineCommand constructor",
)

// UpdateMedicineCommand replaces the name, price and stock of a medicine in
// the acting pharmacy's catalogue. Restocking goes through it too.
type UpdateMedicineCommand struct { //nolint:recvcheck //using for validation
	pharmacy   kernel.Actor
	medicineID kernel.UUID
	name       string
	price      decimal.Decimal
	stock      int

	guard guard.ConstructorGuard
}

func NewUpdateMedicineCommand(
	pharmacy kernel.Actor,
	medicineID kernel.UUID,
	name string,
	price decimal.Decimal,
	stock int,
) (UpdateMedicineCommand, error) {
	command := UpdateMedicineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPharmacy(pharmacy),
		command.setMedicineID(medicineID),
		command.setName(name),
		command.setPrice(price),
		command.setStock(stock),
	); err != nil {
		return UpdateMedicineCommand{}, err
	}

	return command, nil
}

func (c UpdateMedicineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMedicineCommandIsNotConstructed)
}

func (c UpdateMedicineCommand) PharmacyID() kernel.UUID {
	return c.pharmacy.ID()
}

func (c UpdateMedicineCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

func (c UpdateMedicineCommand) Name() string {
	return c.name
}

func (c UpdateMedicineCommand) Price() decimal.Decimal {
	return c.price
}

func (c UpdateMedicineCommand) Stock() int {
	return c.stock
}

func (c *UpdateMedicineCommand) setPharmacy(pharmacy kernel.Actor) error {
	if err := pharmacy.Validate(); err != nil {
		return err
	}
	if pharmacy.Role() != kernel.RolePharmacy {
		return errs.NewActionIsForbiddenError(pharmacy.String(), "update medicines")
	}
	c.pharmacy = pharmacy
	return nil
}

func (c *UpdateMedicineCommand) setMedicineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.medicineID = id
	return nil
}

func (c *UpdateMedicineCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateMedicineCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	c.price = price
	return nil
}

func (c *UpdateMedicineCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	c.stock = stock
	return nil
}
