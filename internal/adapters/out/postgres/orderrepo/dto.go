// Package orderrepo maps order aggregates to the orders and order_items tables.
package orderrepo

import (
	"errors"
	"time"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Items are stored in order_items
// and loaded with Preload("Items").
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	PharmacyID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	DriverID         *uuid.UUID      `gorm:"type:uuid;index"`
	Delivery         LocationDTO     `gorm:"embedded;embeddedPrefix:delivery_"`
	PaymentMethod    string          `gorm:"type:varchar(32);not null"`
	PaymentStatus    string          `gorm:"type:varchar(32);not null"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DistanceKm       float64         `gorm:"not null"`
	EstimatedMinutes int             `gorm:"not null"`
	Notes            string          `gorm:"type:text;not null"`
	Status           string          `gorm:"type:varchar(32);not null;index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
	Version          int             `gorm:"not null"`
	Items            []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type LocationDTO struct {
	Latitude  float64
	Longitude float64
	Address   string `gorm:"type:text;not null"`
}

// OrderItemDTO is a price snapshot of one ordered medicine.
type OrderItemDTO struct {
	OrderID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position     int             `gorm:"primaryKey;autoIncrement:false"`
	MedicineID   uuid.UUID       `gorm:"type:uuid;not null"`
	MedicineName string          `gorm:"type:varchar(255);not null"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Google()

	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Google()
		driverID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:      orderID,
			Position:     i,
			MedicineID:   item.MedicineID().Google(),
			MedicineName: item.MedicineName(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice(),
		})
	}

	address := aggregate.DeliveryAddress()
	estimate := aggregate.Estimate()

	return OrderDTO{
		ID:         orderID,
		CustomerID: aggregate.CustomerID().Google(),
		PharmacyID: aggregate.PharmacyID().Google(),
		DriverID:   driverID,
		Delivery: LocationDTO{
			Latitude:  address.Latitude(),
			Longitude: address.Longitude(),
			Address:   address.Address(),
		},
		PaymentMethod:    aggregate.PaymentMethod().String(),
		PaymentStatus:    string(aggregate.PaymentStatus()),
		TotalAmount:      aggregate.TotalAmount(),
		DistanceKm:       estimate.DistanceKm,
		EstimatedMinutes: estimate.Minutes,
		Notes:            aggregate.Notes(),
		Status:           aggregate.Status().String(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		Version:          aggregate.Version(),
		Items:            items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, idErr := kernel.UUIDFromGoogle(dto.ID)
	customerID, customerErr := kernel.UUIDFromGoogle(dto.CustomerID)
	pharmacyID, pharmacyErr := kernel.UUIDFromGoogle(dto.PharmacyID)
	address, addressErr := kernel.NewLocation(dto.Delivery.Latitude, dto.Delivery.Longitude, dto.Delivery.Address)
	method, methodErr := order.ParsePaymentMethod(dto.PaymentMethod)
	status, statusErr := order.ParseStatus(dto.Status)
	if err := errors.Join(idErr, customerErr, pharmacyErr, addressErr, methodErr, statusErr); err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, err := kernel.UUIDFromGoogle(*dto.DriverID)
		if err != nil {
			return nil, err
		}
		driverID = &dID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		medicineID, err := kernel.UUIDFromGoogle(itemDTO.MedicineID)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(medicineID, itemDTO.MedicineName, itemDTO.Quantity, itemDTO.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              id,
		CustomerID:      customerID,
		PharmacyID:      pharmacyID,
		DriverID:        driverID,
		Items:           items,
		DeliveryAddress: address,
		PaymentMethod:   method,
		PaymentStatus:   order.PaymentStatus(dto.PaymentStatus),
		TotalAmount:     dto.TotalAmount,
		Estimate:        order.Estimate{DistanceKm: dto.DistanceKm, Minutes: dto.EstimatedMinutes},
		Notes:           dto.Notes,
		Status:          status,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
		Version:         dto.Version,
	})
}
