package http

import (
	"meddelivery/internal/core/domain/model/driver"
	"meddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddressRequest struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Address   string  `json:"address,omitempty"`
}

type NewOrderItemRequest struct {
	MedicineID   uuid.UUID       `json:"medicine_id"`
	MedicineName string          `json:"medicine_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

type NewOrderRequest struct {
	PharmacyID      uuid.UUID             `json:"pharmacy_id"`
	Items           []NewOrderItemRequest `json:"items"`
	DeliveryAddress AddressRequest        `json:"delivery_address"`
	PaymentMethod   string                `json:"payment_method"`
	Notes           string                `json:"notes,omitempty"`
}

type StatusChangeRequest struct {
	Status string `json:"status"`
}

type DriverAssignmentRequest struct {
	DriverID uuid.UUID `json:"driver_id"`
}

type NewPharmacyRequest struct {
	BusinessName string         `json:"business_name"`
	Location     AddressRequest `json:"location"`
}

type NewMedicineRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

type NewDriverRequest struct {
	VehicleType   string `json:"vehicle_type"`
	VehicleNumber string `json:"vehicle_number"`
	LicenseNumber string `json:"license_number"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
}

type Created struct {
	ID kernel.UUID `json:"id"`
}

func (r AddressRequest) toLocation() (kernel.Location, error) {
	return kernel.NewLocation(r.Latitude, r.Longitude, r.Address)
}

func (r NewDriverRequest) toProfile() driver.Profile {
	return driver.Profile{
		VehicleType:   r.VehicleType,
		VehicleNumber: r.VehicleNumber,
		LicenseNumber: r.LicenseNumber,
		Address:       r.Address,
		City:          r.City,
		State:         r.State,
	}
}
