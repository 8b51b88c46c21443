package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Estimate is the delivery distance and time between a pharmacy and the
// delivery address, fixed when the order is placed.
type Estimate struct {
	DistanceKm float64
	Minutes    int
}

// Order is the aggregate root for one pharmacy's part of a customer checkout.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	pharmacyID kernel.UUID
	driverID   *kernel.UUID

	items           []Item
	deliveryAddress kernel.Location
	paymentMethod   PaymentMethod
	paymentStatus   PaymentStatus
	totalAmount     decimal.Decimal
	estimate        Estimate
	notes           string

	status    Status
	createdAt time.Time
	updatedAt time.Time
	version   int

	domainEvents []kernel.DomainEvent

	isConstructed bool
}

// NewOrder places a pending order. The total is computed from items here and
// never again.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	pharmacyID kernel.UUID,
	items []Item,
	deliveryAddress kernel.Location,
	paymentMethod PaymentMethod,
	estimate Estimate,
	notes string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		notes:         strings.TrimSpace(notes),
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setPharmacyID(pharmacyID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setPaymentMethod(paymentMethod, estimate.DistanceKm),
		o.setEstimate(estimate),
	); err != nil {
		return nil, err
	}
	o.totalAmount = Total(o.items)

	o.raise(OrderPlaced{
		ID:          kernel.NewUUID(),
		OrderID:     o.id,
		CustomerID:  o.customerID,
		PharmacyID:  o.pharmacyID,
		TotalAmount: o.totalAmount.StringFixed(2),
		Payment:     o.paymentMethod.String(),
		At:          o.createdAt,
	})

	return o, nil
}

// Snapshot is the persisted state of an order.
type Snapshot struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	PharmacyID      kernel.UUID
	DriverID        *kernel.UUID
	Items           []Item
	DeliveryAddress kernel.Location
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	TotalAmount     decimal.Decimal
	Estimate        Estimate
	Notes           string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int
}

// RestoreOrder rebuilds an order from storage. The stored total is kept as is
// and no domain events are recorded.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		paymentMethod: s.PaymentMethod,
		paymentStatus: s.PaymentStatus,
		totalAmount:   s.TotalAmount,
		estimate:      s.Estimate,
		notes:         s.Notes,
		status:        s.Status,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		version:       s.Version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerID(s.CustomerID),
		o.setPharmacyID(s.PharmacyID),
		o.setItems(s.Items),
		o.setDeliveryAddress(s.DeliveryAddress),
		s.PaymentMethod.Validate(),
		s.PaymentStatus.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	if s.DriverID != nil {
		if err := s.DriverID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("driverID", err)
		}
		driverID := *s.DriverID
		o.driverID = &driverID
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) PharmacyID() kernel.UUID {
	return o.pharmacyID
}

// DriverID is nil until a driver is assigned.
func (o *Order) DriverID() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	id := *o.driverID
	return &id
}

func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) DeliveryAddress() kernel.Location {
	return o.deliveryAddress
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

func (o *Order) Estimate() Estimate {
	return o.estimate
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version is the optimistic lock value the order was loaded with.
func (o *Order) Version() int {
	return o.version
}

// IsVisibleTo reports whether actor may read the order: its customer, its
// pharmacy or its assigned driver.
func (o *Order) IsVisibleTo(actor kernel.Actor) bool {
	switch actor.Role() {
	case kernel.RoleCustomer:
		return actor.ID().IsEqual(o.customerID)
	case kernel.RolePharmacy:
		return actor.ID().IsEqual(o.pharmacyID)
	case kernel.RoleDriver:
		return o.driverID != nil && actor.ID().IsEqual(*o.driverID)
	default:
		return false
	}
}

// ChangeStatus moves the order along one edge of the lifecycle graph on
// behalf of actor. An actor who cannot see the order gets
// errs.ErrObjectNotFound, so the current status is never disclosed to them.
// For everybody else the graph is checked before the actor's authority.
func (o *Order) ChangeStatus(actor kernel.Actor, target Status, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !o.IsVisibleTo(actor) {
		return errs.NewObjectNotFoundError("order", o.id)
	}

	from := o.status
	next, err := from.TransitionTo(target)
	if err != nil {
		return err
	}

	if !o.mayPerform(actor, from.authority(next)) {
		return errs.NewActionIsForbiddenError(
			actor.String(),
			fmt.Sprintf("move order %s from %s to %s", o.id, from, next),
		)
	}

	o.status = next
	o.updatedAt = now.UTC()
	o.raise(OrderStatusChanged{
		ID:        kernel.NewUUID(),
		OrderID:   o.id,
		From:      from.String(),
		To:        next.String(),
		ActorID:   actor.ID(),
		ActorRole: actor.Role().String(),
		At:        o.updatedAt,
	})

	return nil
}

// AssignDriver lets the owning pharmacy hand an accepted or preparing order
// to a driver. Reassignment replaces the previous driver.
func (o *Order) AssignDriver(actor kernel.Actor, driverID kernel.UUID, now time.Time) error {
	if err := errors.Join(actor.Validate(), driverID.Validate()); err != nil {
		return err
	}
	if !o.IsVisibleTo(actor) {
		return errs.NewObjectNotFoundError("order", o.id)
	}

	if !actor.Is(kernel.RolePharmacy, o.pharmacyID) {
		return errs.NewActionIsForbiddenError(actor.String(), fmt.Sprintf("assign a driver to order %s", o.id))
	}

	if err := o.status.ValidateAssignDriver(); err != nil {
		return err
	}

	o.driverID = &driverID
	o.updatedAt = now.UTC()
	o.raise(DriverAssigned{
		ID:         kernel.NewUUID(),
		OrderID:    o.id,
		PharmacyID: o.pharmacyID,
		DriverID:   driverID,
		At:         o.updatedAt,
	})

	return nil
}

func (o *Order) DomainEvents() []kernel.DomainEvent {
	events := make([]kernel.DomainEvent, len(o.domainEvents))
	copy(events, o.domainEvents)
	return events
}

func (o *Order) ClearDomainEvents() {
	o.domainEvents = nil
}

func (o *Order) mayPerform(actor kernel.Actor, allowed authority) bool {
	if allowed&byPharmacy != 0 && actor.Is(kernel.RolePharmacy, o.pharmacyID) {
		return true
	}
	if allowed&byDriver != 0 && o.driverID != nil && actor.Is(kernel.RoleDriver, *o.driverID) {
		return true
	}
	return false
}

func (o *Order) raise(event kernel.DomainEvent) {
	o.domainEvents = append(o.domainEvents, event)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setPharmacyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pharmacyID", err)
	}
	o.pharmacyID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryAddress(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = location
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod, distanceKm float64) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if err := method.ValidateDistance(distanceKm); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setEstimate(estimate Estimate) error {
	if estimate.DistanceKm < 0 || estimate.Minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimate", fmt.Errorf("%+v has negative values", estimate))
	}
	o.estimate = estimate
	return nil
}
