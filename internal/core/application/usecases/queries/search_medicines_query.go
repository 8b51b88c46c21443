package queries

import (
	"errors"
	"strings"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"
)

// SearchLimit caps the number of rows a search returns.
const SearchLimit = 100

var ErrSearchMedicinesQueryIsNotConstructed = errors.New(
	"SearchMedicinesQuery must be created via NewSearchMedicinesQuery constructor",
)

// SearchMedicinesQuery looks medicines up by name. When origin is set every
// row also carries the distance from the origin to the pharmacy.
type SearchMedicinesQuery struct {
	text   string
	origin *kernel.Location

	guard guard.ConstructorGuard
}

// NewSearchMedicinesQuery takes latitude and longitude as a pair: both or none.
func NewSearchMedicinesQuery(text string, latitude, longitude *float64) (SearchMedicinesQuery, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return SearchMedicinesQuery{}, errs.NewValueIsRequiredError("q")
	}

	q := SearchMedicinesQuery{text: text, guard: guard.NewConstructorGuard()}

	switch {
	case latitude == nil && longitude == nil:
	case latitude == nil:
		return SearchMedicinesQuery{}, errs.NewValueIsRequiredError("lat")
	case longitude == nil:
		return SearchMedicinesQuery{}, errs.NewValueIsRequiredError("lng")
	default:
		origin, err := kernel.NewLocation(*latitude, *longitude, "")
		if err != nil {
			return SearchMedicinesQuery{}, err
		}
		q.origin = &origin
	}

	return q, nil
}

func (q SearchMedicinesQuery) Validate() error {
	return q.guard.Validate(ErrSearchMedicinesQueryIsNotConstructed)
}

func (q SearchMedicinesQuery) Text() string {
	return q.text
}

// Origin returns the caller's position, if one was given.
func (q SearchMedicinesQuery) Origin() (kernel.Location, bool) {
	if q.origin == nil {
		return kernel.Location{}, false
	}
	return *q.origin, true
}
