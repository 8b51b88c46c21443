package queries

import (
	"context"
	"strings"

	"meddelivery/internal/core/domain/model/cart"
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchMedicinesQueryHandler returns in-stock medicines of active
// pharmacies whose name contains the search text, cheapest first.
type SearchMedicinesQueryHandler struct {
	db        *gorm.DB
	estimator services.DeliveryEstimator
}

// likeEscaper makes the search text match literally, so "%" or "_" typed by
// a customer do not act as wildcards.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

func NewSearchMedicinesQueryHandler(db *gorm.DB, estimator services.DeliveryEstimator) SearchMedicinesQueryHandler {
	return SearchMedicinesQueryHandler{db: db, estimator: estimator}
}

func (h SearchMedicinesQueryHandler) Handle(ctx context.Context, query SearchMedicinesQuery) ([]cart.SearchResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.name,
			m.price,
			p.id,
			p.business_name,
			p.location_latitude,
			p.location_longitude
		FROM medicines m
		JOIN pharmacies p ON p.id = m.pharmacy_id
		WHERE p.is_active AND m.stock > 0 AND m.name ILIKE ? ESCAPE '\'
		ORDER BY m.price, m.name, m.id
		LIMIT ?
	`, containsPattern(query.Text()), SearchLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	origin, hasOrigin := query.Origin()

	results := make([]cart.SearchResult, 0)
	for rows.Next() {
		var (
			r                      cart.SearchResult
			medicineID, pharmacyID uuid.UUID
			latitude, longitude    float64
		)

		err = rows.Scan(
			&medicineID,
			&r.Medicine.Name,
			&r.Medicine.Price,
			&pharmacyID,
			&r.Pharmacy.BusinessName,
			&latitude,
			&longitude,
		)
		if err != nil {
			return nil, err
		}

		if r.Medicine.ID, err = kernel.UUIDFromGoogle(medicineID); err != nil {
			return nil, err
		}
		if r.Pharmacy.ID, err = kernel.UUIDFromGoogle(pharmacyID); err != nil {
			return nil, err
		}

		if hasOrigin {
			pharmacyLocation, locErr := kernel.NewLocation(latitude, longitude, "")
			if locErr != nil {
				return nil, locErr
			}
			km, distErr := origin.DistanceTo(pharmacyLocation)
			if distErr != nil {
				return nil, distErr
			}
			minutes := h.estimator.Minutes(km)
			r.DistanceKm = &km
			r.EstimatedMinutes = &minutes
		}

		results = append(results, r)
	}

	return results, rows.Err()
}
