package order

import (
	"errors"
	"fmt"
	"strings"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a snapshot of one ordered medicine. Prices are copied at submission
// time so later catalogue changes cannot alter a placed order.
type Item struct {
	medicineID    kernel.UUID
	medicineName  string
	quantity      int
	unitPrice     decimal.Decimal
	isConstructed bool
}

func NewItem(medicineID kernel.UUID, medicineName string, quantity int, unitPrice decimal.Decimal) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setMedicineID(medicineID),
		item.setMedicineName(medicineName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i Item) MedicineID() kernel.UUID {
	return i.medicineID
}

func (i Item) MedicineName() string {
	return i.medicineName
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal is unit price times quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setMedicineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("medicineID", err)
	}
	i.medicineID = id
	return nil
}

func (i *Item) setMedicineName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("medicineName")
	}
	i.medicineName = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", price))
	}
	i.unitPrice = price
	return nil
}

// Total sums the item subtotals.
func Total(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
