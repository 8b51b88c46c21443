package pharmacyrepo

import (
	"context"
	"errors"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/pharmacy"
	"meddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormPharmacyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate kernel.AggregateRoot)
}

func NewGormPharmacyRepository(db *gorm.DB, tracker aggregateTracker) *GormPharmacyRepository {
	return &GormPharmacyRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPharmacyRepository) Add(ctx context.Context, aggregate *pharmacy.Pharmacy) error {
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

// Update bumps the pharmacy version, deletes the medicine rows the catalogue
// no longer lists and upserts the rest.
func (r *GormPharmacyRepository) Update(ctx context.Context, aggregate *pharmacy.Pharmacy) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&PharmacyDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"business_name":      dto.BusinessName,
			"location_latitude":  dto.Location.Latitude,
			"location_longitude": dto.Location.Longitude,
			"location_address":   dto.Location.Address,
			"is_active":          dto.IsActive,
			"version":            gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate)
	}

	listed := make([]uuid.UUID, 0, len(dto.Medicines))
	for _, m := range dto.Medicines {
		listed = append(listed, m.ID)
	}
	removed := db.Where("pharmacy_id = ?", dto.ID)
	if len(listed) > 0 {
		removed = removed.Where("id NOT IN ?", listed)
	}
	if err := removed.Delete(&MedicineDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Medicines) > 0 {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price", "stock"}),
		}).Create(&dto.Medicines).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormPharmacyRepository) Get(ctx context.Context, id kernel.UUID) (*pharmacy.Pharmacy, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PharmacyDTO
	err := r.db.WithContext(ctx).
		Preload("Medicines", func(db *gorm.DB) *gorm.DB { return db.Order("name, id") }).
		First(&dto, "id = ?", id.Google()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pharmacy", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormPharmacyRepository) missingOrStale(ctx context.Context, aggregate *pharmacy.Pharmacy) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&PharmacyDTO{}).Where("id = ?", aggregate.ID().Google()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("pharmacy", aggregate.ID().String())
	}
	return errs.NewVersionIsInvalidError("pharmacy " + aggregate.ID().String())
}
