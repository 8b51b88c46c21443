package queries

import (
	"context"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PharmacyResponse struct {
	ID           kernel.UUID        `json:"id"`
	BusinessName string             `json:"business_name"`
	Location     AddressResponse    `json:"location"`
	IsActive     bool               `json:"is_active"`
	Medicines    []MedicineResponse `json:"medicines"`
}

type MedicineResponse struct {
	ID    kernel.UUID     `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

type GetMyPharmacyQueryHandler struct {
	db *gorm.DB
}

func NewGetMyPharmacyQueryHandler(db *gorm.DB) GetMyPharmacyQueryHandler {
	return GetMyPharmacyQueryHandler{db: db}
}

func (h GetMyPharmacyQueryHandler) Handle(ctx context.Context, query GetMyPharmacyQuery) (PharmacyResponse, error) {
	if err := query.Validate(); err != nil {
		return PharmacyResponse{}, err
	}

	var (
		resp  PharmacyResponse
		found bool
	)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT business_name, location_latitude, location_longitude, location_address, is_active
		FROM pharmacies
		WHERE id = ?
	`, query.PharmacyID().Google()).Rows()
	if err != nil {
		return PharmacyResponse{}, err
	}
	for rows.Next() {
		found = true
		err = rows.Scan(
			&resp.BusinessName,
			&resp.Location.Latitude,
			&resp.Location.Longitude,
			&resp.Location.Address,
			&resp.IsActive,
		)
		if err != nil {
			_ = rows.Close()
			return PharmacyResponse{}, err
		}
	}
	if err = rows.Err(); err != nil {
		_ = rows.Close()
		return PharmacyResponse{}, err
	}
	_ = rows.Close()

	if !found {
		return PharmacyResponse{}, errs.NewObjectNotFoundError("pharmacy", query.PharmacyID().String())
	}
	resp.ID = query.PharmacyID()

	resp.Medicines, err = h.medicines(ctx, query.PharmacyID())
	if err != nil {
		return PharmacyResponse{}, err
	}
	return resp, nil
}

func (h GetMyPharmacyQueryHandler) medicines(ctx context.Context, pharmacyID kernel.UUID) ([]MedicineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price, stock
		FROM medicines
		WHERE pharmacy_id = ?
		ORDER BY name, id
	`, pharmacyID.Google()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	medicines := make([]MedicineResponse, 0)
	for rows.Next() {
		var (
			m  MedicineResponse
			id uuid.UUID
		)
		if err = rows.Scan(&id, &m.Name, &m.Price, &m.Stock); err != nil {
			return nil, err
		}
		if m.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		medicines = append(medicines, m)
	}
	return medicines, rows.Err()
}
