package pharmacy

import (
	"errors"
	"fmt"
	"strings"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPharmacyIsNotConstructed = errors.New("Pharmacy must be created via NewPharmacy constructor")
	ErrPharmacyIsInactive       = errors.New("pharmacy is not accepting orders")
)

// Pharmacy is the aggregate root for a pharmacy and its catalogue.
type Pharmacy struct {
	id           kernel.UUID
	businessName string
	location     kernel.Location
	isActive     bool
	medicines    []*Medicine
	version      int

	guard guard.ConstructorGuard
}

// NewPharmacy registers an active pharmacy with an empty catalogue.
func NewPharmacy(id kernel.UUID, businessName string, location kernel.Location) (*Pharmacy, error) {
	p := &Pharmacy{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setBusinessName(businessName),
		p.setLocation(location),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func RestorePharmacy(
	id kernel.UUID,
	businessName string,
	location kernel.Location,
	isActive bool,
	medicines []*Medicine,
	version int,
) (*Pharmacy, error) {
	p := &Pharmacy{
		isActive: isActive,
		version:  version,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setBusinessName(businessName),
		p.setLocation(location),
		p.setMedicines(medicines),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Pharmacy) Validate() error {
	if p == nil {
		return ErrPharmacyIsNotConstructed
	}
	return p.guard.Validate(ErrPharmacyIsNotConstructed)
}

func (p *Pharmacy) IsEqual(other *Pharmacy) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Pharmacy) ID() kernel.UUID {
	return p.id
}

func (p *Pharmacy) BusinessName() string {
	return p.businessName
}

func (p *Pharmacy) Location() kernel.Location {
	return p.location
}

func (p *Pharmacy) IsActive() bool {
	return p.isActive
}

func (p *Pharmacy) Version() int {
	return p.version
}

func (p *Pharmacy) Medicines() []*Medicine {
	out := make([]*Medicine, len(p.medicines))
	copy(out, p.medicines)
	return out
}

func (p *Pharmacy) Medicine(id kernel.UUID) (*Medicine, bool) {
	for _, m := range p.medicines {
		if m.id.IsEqual(id) {
			return m, true
		}
	}
	return nil, false
}

func (p *Pharmacy) AddMedicine(id kernel.UUID, name string, price decimal.Decimal, stock int) (*Medicine, error) {
	if _, exists := p.Medicine(id); exists {
		return nil, errs.NewValueIsInvalidErrorWithCause("medicineID", fmt.Errorf("%s is already listed", id))
	}

	m, err := NewMedicine(id, name, price, stock)
	if err != nil {
		return nil, err
	}

	p.medicines = append(p.medicines, m)
	return m, nil
}

// UpdateMedicine replaces the name, price and stock of a listed medicine.
// Nothing changes when any value is invalid.
func (p *Pharmacy) UpdateMedicine(id kernel.UUID, name string, price decimal.Decimal, stock int) (*Medicine, error) {
	m, ok := p.Medicine(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("medicineID", id)
	}

	updated, err := NewMedicine(id, name, price, stock)
	if err != nil {
		return nil, err
	}

	m.name, m.price, m.stock = updated.name, updated.price, updated.stock
	return m, nil
}

// RemoveMedicine takes a medicine out of the catalogue. Orders already placed
// keep their own copy of its name and price.
func (p *Pharmacy) RemoveMedicine(id kernel.UUID) error {
	for i, m := range p.medicines {
		if m.id.IsEqual(id) {
			p.medicines = append(p.medicines[:i:i], p.medicines[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("medicineID", id)
}

func (p *Pharmacy) SetActive(active bool) {
	p.isActive = active
}

// Reserve takes every item out of stock, or none of them. Quantities of the
// same medicine across items are added up.
func (p *Pharmacy) Reserve(items []order.Item) error {
	if !p.isActive {
		return errs.NewValueIsInvalidErrorWithCause("pharmacyID", ErrPharmacyIsInactive)
	}

	wanted := make(map[kernel.UUID]int, len(items))
	for _, item := range items {
		wanted[item.MedicineID()] += item.Quantity()
	}

	var problems []error
	for medicineID, quantity := range wanted {
		m, ok := p.Medicine(medicineID)
		if !ok {
			problems = append(problems, errs.NewObjectNotFoundError("medicineID", medicineID))
			continue
		}
		if err := m.canSupply(quantity); err != nil {
			problems = append(problems, err)
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	for medicineID, quantity := range wanted {
		m, _ := p.Medicine(medicineID)
		m.stock -= quantity
	}
	return nil
}

// The catalogue carries no domain events; these satisfy kernel.AggregateRoot.

func (p *Pharmacy) DomainEvents() []kernel.DomainEvent {
	return nil
}

func (p *Pharmacy) ClearDomainEvents() {}

func (p *Pharmacy) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pharmacy) setBusinessName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("businessName")
	}
	p.businessName = name
	return nil
}

func (p *Pharmacy) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}

func (p *Pharmacy) setMedicines(medicines []*Medicine) error {
	for _, m := range medicines {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	p.medicines = make([]*Medicine, len(medicines))
	copy(p.medicines, medicines)
	return nil
}
