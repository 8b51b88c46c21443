package cart

import (
	"strings"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// SearchResult is one row returned by the medicine search, in the shape the
// backend serves it.
type SearchResult struct {
	Medicine         MedicineRef `json:"medicine"`
	Pharmacy         PharmacyRef `json:"pharmacy"`
	DistanceKm       *float64    `json:"distance_km,omitempty"`
	EstimatedMinutes *int        `json:"estimated_time,omitempty"`
}

type MedicineRef struct {
	ID    kernel.UUID     `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type PharmacyRef struct {
	ID           kernel.UUID `json:"id"`
	BusinessName string      `json:"business_name"`
}

func (r SearchResult) Validate() error {
	switch {
	case r.Medicine.ID.IsZero():
		return errs.NewValueIsRequiredError("medicine.id")
	case strings.TrimSpace(r.Medicine.Name) == "":
		return errs.NewValueIsRequiredError("medicine.name")
	case r.Medicine.Price.IsNegative():
		return errs.NewValueIsInvalidError("medicine.price")
	case r.Pharmacy.ID.IsZero():
		return errs.NewValueIsRequiredError("pharmacy.id")
	}
	return nil
}
