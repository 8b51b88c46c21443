package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
	"meddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type DriverResponse struct {
	ID              kernel.UUID      `json:"id"`
	VehicleType     string           `json:"vehicle_type"`
	VehicleNumber   string           `json:"vehicle_number"`
	LicenseNumber   string           `json:"license_number"`
	Address         string           `json:"address"`
	City            string           `json:"city"`
	State           string           `json:"state"`
	CurrentLocation *AddressResponse `json:"current_location,omitempty"`
	IsAvailable     bool             `json:"is_available"`
	// ActiveDeliveries counts assigned orders that are not delivered or
	// cancelled yet.
	ActiveDeliveries int       `json:"active_deliveries"`
	TotalDeliveries  int       `json:"total_deliveries"`
	CreatedAt        time.Time `json:"created_at"`
}

type GetMyDriverQueryHandler struct {
	db *gorm.DB
}

func NewGetMyDriverQueryHandler(db *gorm.DB) GetMyDriverQueryHandler {
	return GetMyDriverQueryHandler{db: db}
}

func (h GetMyDriverQueryHandler) Handle(ctx context.Context, query GetMyDriverQuery) (DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverResponse{}, err
	}

	var (
		resp                DriverResponse
		latitude, longitude sql.NullFloat64
		locationAddress     sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			d.vehicle_type,
			d.vehicle_number,
			d.license_number,
			d.address,
			d.city,
			d.state,
			d.location_latitude,
			d.location_longitude,
			d.location_address,
			d.is_available,
			d.created_at,
			COUNT(o.id) FILTER (WHERE o.status IN ?),
			COUNT(o.id) FILTER (WHERE o.status = ?)
		FROM drivers d
		LEFT JOIN orders o ON o.driver_id = d.id
		WHERE d.id = ?
		GROUP BY d.id
	`,
		[]string{order.Accepted.String(), order.Preparing.String(), order.PickedUp.String(), order.InTransit.String()},
		order.Delivered.String(),
		query.DriverID().Google(),
	).Row()

	err := row.Scan(
		&resp.VehicleType,
		&resp.VehicleNumber,
		&resp.LicenseNumber,
		&resp.Address,
		&resp.City,
		&resp.State,
		&latitude,
		&longitude,
		&locationAddress,
		&resp.IsAvailable,
		&resp.CreatedAt,
		&resp.ActiveDeliveries,
		&resp.TotalDeliveries,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return DriverResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID().String())
	}
	if err != nil {
		return DriverResponse{}, err
	}

	resp.ID = query.DriverID()
	if latitude.Valid && longitude.Valid {
		resp.CurrentLocation = &AddressResponse{
			Latitude:  latitude.Float64,
			Longitude: longitude.Float64,
			Address:   locationAddress.String,
		}
	}
	resp.CreatedAt = resp.CreatedAt.UTC()
	return resp, nil
}
