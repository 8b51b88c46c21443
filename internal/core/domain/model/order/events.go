package order

import (
	"time"

	"meddelivery/internal/core/domain/model/kernel"
)

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
	EventDriverAssigned     = "order.driver_assigned"
)

type OrderPlaced struct {
	ID          kernel.UUID `json:"id"`
	OrderID     kernel.UUID `json:"order_id"`
	CustomerID  kernel.UUID `json:"customer_id"`
	PharmacyID  kernel.UUID `json:"pharmacy_id"`
	TotalAmount string      `json:"total_amount"`
	Payment     string      `json:"payment_method"`
	At          time.Time   `json:"occurred_at"`
}

func (e OrderPlaced) EventID() kernel.UUID     { return e.ID }
func (e OrderPlaced) EventName() string        { return EventOrderPlaced }
func (e OrderPlaced) AggregateID() kernel.UUID { return e.OrderID }
func (e OrderPlaced) OccurredAt() time.Time    { return e.At }

type OrderStatusChanged struct {
	ID        kernel.UUID `json:"id"`
	OrderID   kernel.UUID `json:"order_id"`
	From      string      `json:"from"`
	To        string      `json:"to"`
	ActorID   kernel.UUID `json:"actor_id"`
	ActorRole string      `json:"actor_role"`
	At        time.Time   `json:"occurred_at"`
}

func (e OrderStatusChanged) EventID() kernel.UUID     { return e.ID }
func (e OrderStatusChanged) EventName() string        { return EventOrderStatusChanged }
func (e OrderStatusChanged) AggregateID() kernel.UUID { return e.OrderID }
func (e OrderStatusChanged) OccurredAt() time.Time    { return e.At }

type DriverAssigned struct {
	ID         kernel.UUID `json:"id"`
	OrderID    kernel.UUID `json:"order_id"`
	PharmacyID kernel.UUID `json:"pharmacy_id"`
	DriverID   kernel.UUID `json:"driver_id"`
	At         time.Time   `json:"occurred_at"`
}

func (e DriverAssigned) EventID() kernel.UUID     { return e.ID }
func (e DriverAssigned) EventName() string        { return EventDriverAssigned }
func (e DriverAssigned) AggregateID() kernel.UUID { return e.OrderID }
func (e DriverAssigned) OccurredAt() time.Time    { return e.At }
