package queries

import (
	"errors"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"
)

var ErrGetMyPharmacyQueryIsNotConstructed = errors.New(
	"GetMyPharmacyQuery must be created via NewGetMyPharmacyQuery constructor",
)

// GetMyPharmacyQuery reads the caller's own pharmacy with its whole
// inventory, out-of-stock medicines included.
type GetMyPharmacyQuery struct {
	pharmacyID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMyPharmacyQuery(owner kernel.Actor) (GetMyPharmacyQuery, error) {
	if err := owner.Validate(); err != nil {
		return GetMyPharmacyQuery{}, err
	}
	if owner.Role() != kernel.RolePharmacy {
		return GetMyPharmacyQuery{}, errs.NewActionIsForbiddenError(owner.String(), "view pharmacy")
	}
	return GetMyPharmacyQuery{pharmacyID: owner.ID(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetMyPharmacyQuery) Validate() error {
	return q.guard.Validate(ErrGetMyPharmacyQueryIsNotConstructed)
}

func (q GetMyPharmacyQuery) PharmacyID() kernel.UUID {
	return q.pharmacyID
}
