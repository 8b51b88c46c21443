package commands

import (
	"errors"
	"strings"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand asks to place one pharmacy's order for a customer.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customer, pharmacyID, items, address, order.UPI, "")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customer        kernel.Actor
	pharmacyID      kernel.UUID
	items           []order.Item
	deliveryAddress kernel.Location
	paymentMethod   order.PaymentMethod
	notes           string

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customer kernel.Actor,
	pharmacyID kernel.UUID,
	items []order.Item,
	deliveryAddress kernel.Location,
	paymentMethod order.PaymentMethod,
	notes string,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomer(customer),
		command.setPharmacyID(pharmacyID),
		command.setItems(items),
		command.setDeliveryAddress(deliveryAddress),
		command.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) Customer() kernel.Actor {
	return c.customer
}

func (c PlaceOrderCommand) PharmacyID() kernel.UUID {
	return c.pharmacyID
}

func (c PlaceOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c PlaceOrderCommand) DeliveryAddress() kernel.Location {
	return c.deliveryAddress
}

func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomer(customer kernel.Actor) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	if customer.Role() != kernel.RoleCustomer {
		return errs.NewActionIsForbiddenError(customer.String(), "place orders")
	}
	c.customer = customer
	return nil
}

func (c *PlaceOrderCommand) setPharmacyID(pharmacyID kernel.UUID) error {
	if err := pharmacyID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pharmacyID", err)
	}
	c.pharmacyID = pharmacyID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(address kernel.Location) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.deliveryAddress = address
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}
