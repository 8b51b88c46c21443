package ports

import (
	"context"

	"meddelivery/internal/core/domain/model/driver"
	"meddelivery/internal/core/domain/model/kernel"
)

// DriverRepository persists driver profiles and their last known location.
type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update fails with errs.ErrVersionIsInvalid when the driver changed since
	// it was read.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get loads a driver, or fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}
