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

var ErrAddMedicineCommandIsNotConstructed = errors.New(
	"AddMedicineCommand must be created via NewAddMedicineCommand constructor",
)

// AddMedicineCommand lists a medicine in the acting pharmacy's catalogue.
type AddMedicineCommand struct { //nolint:recvcheck //using for validation
	pharmacy   kernel.Actor
	medicineID kernel.UUID
	name       string
	price      decimal.Decimal
	stock      int

	guard guard.ConstructorGuard
}

func NewAddMedicineCommand(
	pharmacy kernel.Actor,
	medicineID kernel.UUID,
	name string,
	price decimal.Decimal,
	stock int,
) (AddMedicineCommand, error) {
	command := AddMedicineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPharmacy(pharmacy),
		command.setMedicineID(medicineID),
		command.setName(name),
		command.setPrice(price),
		command.setStock(stock),
	); err != nil {
		return AddMedicineCommand{}, err
	}

	return command, nil
}

func (c AddMedicineCommand) Validate() error {
	return c.guard.Validate(ErrAddMedicineCommandIsNotConstructed)
}

func (c AddMedicineCommand) PharmacyID() kernel.UUID {
	return c.pharmacy.ID()
}

func (c AddMedicineCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

func (c AddMedicineCommand) Name() string {
	return c.name
}

func (c AddMedicineCommand) Price() decimal.Decimal {
	return c.price
}

func (c AddMedicineCommand) Stock() int {
	return c.stock
}

func (c *AddMedicineCommand) setPharmacy(pharmacy kernel.Actor) error {
	if err := pharmacy.Validate(); err != nil {
		return err
	}
	if pharmacy.Role() != kernel.RolePharmacy {
		return errs.NewActionIsForbiddenError(pharmacy.String(), "list medicines")
	}
	c.pharmacy = pharmacy
	return nil
}

func (c *AddMedicineCommand) setMedicineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.medicineID = id
	return nil
}

func (c *AddMedicineCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AddMedicineCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	c.price = price
	return nil
}

func (c *AddMedicineCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	c.stock = stock
	return nil
}
