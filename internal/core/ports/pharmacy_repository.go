package ports

import (
	"context"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/pharmacy"
)

// PharmacyRepository persists pharmacies with their medicine catalogue.
type PharmacyRepository interface {
	Add(ctx context.Context, aggregate *pharmacy.Pharmacy) error

	// Update stores the pharmacy and its medicines. Stock changes are guarded
	// by the pharmacy version like order updates.
	Update(ctx context.Context, aggregate *pharmacy.Pharmacy) error

	Get(ctx context.Context, id kernel.UUID) (*pharmacy.Pharmacy, error)
}
