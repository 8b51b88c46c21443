package pharmacy

import (
	"errors"
	"fmt"
	"strings"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrMedicineIsNotConstructed = errors.New("Medicine must be created via NewMedicine constructor")

// Medicine is a catalogue entry of one pharmacy.
type Medicine struct {
	id    kernel.UUID
	name  string
	price decimal.Decimal
	stock int

	guard guard.ConstructorGuard
}

func NewMedicine(id kernel.UUID, name string, price decimal.Decimal, stock int) (*Medicine, error) {
	m := &Medicine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
		m.setStock(stock),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Medicine) Validate() error {
	if m == nil {
		return ErrMedicineIsNotConstructed
	}
	return m.guard.Validate(ErrMedicineIsNotConstructed)
}

func (m *Medicine) ID() kernel.UUID {
	return m.id
}

func (m *Medicine) Name() string {
	return m.name
}

func (m *Medicine) Price() decimal.Decimal {
	return m.price
}

func (m *Medicine) Stock() int {
	return m.stock
}

func (m *Medicine) InStock() bool {
	return m.stock > 0
}

// Restock adds quantity units.
func (m *Medicine) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	m.stock += quantity
	return nil
}

func (m *Medicine) canSupply(quantity int) error {
	if quantity > m.stock {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"quantity", quantity, 1, m.stock,
			fmt.Errorf("only %d of %s in stock", m.stock, m.name),
		)
	}
	return nil
}

func (m *Medicine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Medicine) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Medicine) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	m.price = price
	return nil
}

func (m *Medicine) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	m.stock = stock
	return nil
}
