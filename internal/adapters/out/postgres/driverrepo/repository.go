package driverrepo

import (
	"context"
	"errors"

	"meddelivery/internal/core/domain/model/driver"
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate kernel.AggregateRoot)
}

func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update writes the location and availability of a driver read at
// aggregate.Version(). The profile is fixed at registration.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"location_latitude":  dto.Location.Latitude,
			"location_longitude": dto.Location.Longitude,
			"location_address":   dto.Location.Address,
			"is_available":       dto.IsAvailable,
			"version":            gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDriverRepository) missingOrStale(ctx context.Context, aggregate *driver.Driver) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DriverDTO{}).Where("id = ?", aggregate.ID().Google()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}
	return errs.NewVersionIsInvalidError("driver " + aggregate.ID().String())
}
