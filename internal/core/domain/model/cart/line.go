package cart

import (
	"errors"
	"fmt"
	"strings"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
	"meddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Line is one medicine in the cart.
type Line struct {
	medicineID   kernel.UUID
	medicineName string
	unitPrice    decimal.Decimal
	quantity     int
	pharmacyID   kernel.UUID
	pharmacyName string
}

// NewLine rebuilds a line, for example from a persisted cart.
func NewLine(
	medicineID kernel.UUID,
	medicineName string,
	unitPrice decimal.Decimal,
	quantity int,
	pharmacyID kernel.UUID,
	pharmacyName string,
) (Line, error) {
	l := Line{pharmacyName: strings.TrimSpace(pharmacyName)}

	if err := errors.Join(
		l.setMedicine(medicineID, medicineName),
		l.setUnitPrice(unitPrice),
		l.setQuantity(quantity),
		l.setPharmacyID(pharmacyID),
	); err != nil {
		return Line{}, err
	}

	return l, nil
}

func lineFromSearchResult(r SearchResult) Line {
	return Line{
		medicineID:   r.Medicine.ID,
		medicineName: strings.TrimSpace(r.Medicine.Name),
		unitPrice:    r.Medicine.Price,
		quantity:     1,
		pharmacyID:   r.Pharmacy.ID,
		pharmacyName: strings.TrimSpace(r.Pharmacy.BusinessName),
	}
}

func (l Line) MedicineID() kernel.UUID {
	return l.medicineID
}

func (l Line) MedicineName() string {
	return l.medicineName
}

func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) PharmacyID() kernel.UUID {
	return l.pharmacyID
}

func (l Line) PharmacyName() string {
	return l.pharmacyName
}

func (l Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// ToOrderItem snapshots the line for submission.
func (l Line) ToOrderItem() (order.Item, error) {
	return order.NewItem(l.medicineID, l.medicineName, l.quantity, l.unitPrice)
}

func (l *Line) setMedicine(id kernel.UUID, name string) error {
	name = strings.TrimSpace(name)
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("medicineID", err)
	}
	if name == "" {
		return errs.NewValueIsRequiredError("medicineName")
	}
	l.medicineID = id
	l.medicineName = name
	return nil
}

func (l *Line) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", price))
	}
	l.unitPrice = price
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setPharmacyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pharmacyID", err)
	}
	l.pharmacyID = id
	return nil
}
