// Package queries contains read-only use cases. Handlers read the database
// directly with SQL and return response structs shaped for the API; they
// never load aggregates and never change state.
package queries

import (
	"context"
	"time"

	"meddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderResponse is an order as shown to its customer, pharmacy or driver.
type OrderResponse struct {
	ID               kernel.UUID         `json:"id"`
	CustomerID       kernel.UUID         `json:"customer_id"`
	PharmacyID       kernel.UUID         `json:"pharmacy_id"`
	PharmacyName     string              `json:"pharmacy_name"`
	DriverID         *kernel.UUID        `json:"driver_id,omitempty"`
	Items            []OrderItemResponse `json:"items"`
	DeliveryAddress  AddressResponse     `json:"delivery_address"`
	PaymentMethod    string              `json:"payment_method"`
	PaymentStatus    string              `json:"payment_status"`
	Status           string              `json:"status"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	DistanceKm       float64             `json:"distance_km"`
	EstimatedMinutes int                 `json:"estimated_time"`
	Notes            string              `json:"notes,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

type OrderItemResponse struct {
	MedicineID   kernel.UUID     `json:"medicine_id"`
	MedicineName string          `json:"medicine_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

type AddressResponse struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Address   string  `json:"address"`
}

// isVisibleTo mirrors order.Order.IsVisibleTo for rows read without the aggregate.
func (r OrderResponse) isVisibleTo(actor kernel.Actor) bool {
	switch actor.Role() {
	case kernel.RoleCustomer:
		return actor.ID().IsEqual(r.CustomerID)
	case kernel.RolePharmacy:
		return actor.ID().IsEqual(r.PharmacyID)
	case kernel.RoleDriver:
		return r.DriverID != nil && actor.ID().IsEqual(*r.DriverID)
	default:
		return false
	}
}

const selectOrders = `
	SELECT
		o.id,
		o.customer_id,
		o.pharmacy_id,
		p.business_name,
		o.driver_id,
		o.delivery_latitude,
		o.delivery_longitude,
		o.delivery_address,
		o.payment_method,
		o.payment_status,
		o.status,
		o.total_amount,
		o.distance_km,
		o.estimated_minutes,
		o.notes,
		o.created_at,
		o.updated_at
	FROM orders o
	JOIN pharmacies p ON p.id = o.pharmacy_id
`

// findOrders runs selectOrders with the given tail (WHERE, ORDER BY, LIMIT)
// and attaches the items of every returned order.
func findOrders(ctx context.Context, db *gorm.DB, tail string, args ...any) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(selectOrders+tail, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			resp                       OrderResponse
			id, customerID, pharmacyID uuid.UUID
			driverID                   uuid.NullUUID
		)

		err = rows.Scan(
			&id,
			&customerID,
			&pharmacyID,
			&resp.PharmacyName,
			&driverID,
			&resp.DeliveryAddress.Latitude,
			&resp.DeliveryAddress.Longitude,
			&resp.DeliveryAddress.Address,
			&resp.PaymentMethod,
			&resp.PaymentStatus,
			&resp.Status,
			&resp.TotalAmount,
			&resp.DistanceKm,
			&resp.EstimatedMinutes,
			&resp.Notes,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromGoogle(customerID); err != nil {
			return nil, err
		}
		if resp.PharmacyID, err = kernel.UUIDFromGoogle(pharmacyID); err != nil {
			return nil, err
		}
		if driverID.Valid {
			dID, idErr := kernel.UUIDFromGoogle(driverID.UUID)
			if idErr != nil {
				return nil, idErr
			}
			resp.DriverID = &dID
		}
		resp.Items = make([]OrderItemResponse, 0)

		index[id] = len(orders)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}
	if err = attachItems(ctx, db, orders, index); err != nil {
		return nil, err
	}
	return orders, nil
}

func attachItems(ctx context.Context, db *gorm.DB, orders []OrderResponse, index map[uuid.UUID]int) error {
	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT order_id, medicine_id, medicine_name, quantity, unit_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                OrderItemResponse
			orderID, medicineID uuid.UUID
		)
		if err = rows.Scan(&orderID, &medicineID, &item.MedicineName, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}
		if item.MedicineID, err = kernel.UUIDFromGoogle(medicineID); err != nil {
			return err
		}
		i := index[orderID]
		orders[i].Items = append(orders[i].Items, item)
	}
	return rows.Err()
}
