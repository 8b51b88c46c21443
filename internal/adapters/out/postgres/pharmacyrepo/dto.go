// Package pharmacyrepo maps pharmacy aggregates to the pharmacies and
// medicines tables.
package pharmacyrepo

import (
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/pharmacy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PharmacyDTO struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	BusinessName string        `gorm:"type:varchar(255);not null"`
	Location     LocationDTO   `gorm:"embedded;embeddedPrefix:location_"`
	IsActive     bool          `gorm:"not null"`
	Version      int           `gorm:"not null"`
	Medicines    []MedicineDTO `gorm:"foreignKey:PharmacyID;constraint:OnDelete:CASCADE"`
}

func (PharmacyDTO) TableName() string {
	return "pharmacies"
}

type LocationDTO struct {
	Latitude  float64
	Longitude float64
	Address   string `gorm:"type:text;not null"`
}

type MedicineDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PharmacyID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock      int             `gorm:"not null"`
}

func (MedicineDTO) TableName() string {
	return "medicines"
}

func fromDomain(aggregate *pharmacy.Pharmacy) PharmacyDTO {
	pharmacyID := aggregate.ID().Google()

	medicines := make([]MedicineDTO, 0, len(aggregate.Medicines()))
	for _, m := range aggregate.Medicines() {
		medicines = append(medicines, MedicineDTO{
			ID:         m.ID().Google(),
			PharmacyID: pharmacyID,
			Name:       m.Name(),
			Price:      m.Price(),
			Stock:      m.Stock(),
		})
	}

	loc := aggregate.Location()
	return PharmacyDTO{
		ID:           pharmacyID,
		BusinessName: aggregate.BusinessName(),
		Location: LocationDTO{
			Latitude:  loc.Latitude(),
			Longitude: loc.Longitude(),
			Address:   loc.Address(),
		},
		IsActive:  aggregate.IsActive(),
		Version:   aggregate.Version(),
		Medicines: medicines,
	}
}

func toDomain(dto PharmacyDTO) (*pharmacy.Pharmacy, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude, dto.Location.Address)
	if err != nil {
		return nil, err
	}

	medicines := make([]*pharmacy.Medicine, 0, len(dto.Medicines))
	for _, medicineDTO := range dto.Medicines {
		m, medicineErr := medicineToDomain(medicineDTO)
		if medicineErr != nil {
			return nil, medicineErr
		}
		medicines = append(medicines, m)
	}

	return pharmacy.RestorePharmacy(id, dto.BusinessName, loc, dto.IsActive, medicines, dto.Version)
}

func medicineToDomain(dto MedicineDTO) (*pharmacy.Medicine, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return pharmacy.NewMedicine(id, dto.Name, dto.Price, dto.Stock)
}
