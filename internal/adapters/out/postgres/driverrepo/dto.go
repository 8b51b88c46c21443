// Package driverrepo maps driver aggregates to the drivers table.
package driverrepo

import (
	"time"

	"meddelivery/internal/core/domain/model/driver"
	"meddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DriverDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	VehicleType   string      `gorm:"type:varchar(64);not null"`
	VehicleNumber string      `gorm:"type:varchar(32);not null"`
	LicenseNumber string      `gorm:"type:varchar(64);not null"`
	Address       string      `gorm:"type:text;not null"`
	City          string      `gorm:"type:varchar(128);not null"`
	State         string      `gorm:"type:varchar(128);not null"`
	Location      LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	IsAvailable   bool        `gorm:"not null"`
	CreatedAt     time.Time   `gorm:"not null"`
	Version       int         `gorm:"not null"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

// LocationDTO columns are all NULL until the driver reports a position.
type LocationDTO struct {
	Latitude  *float64
	Longitude *float64
	Address   *string `gorm:"type:text"`
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	p := aggregate.Profile()
	dto := DriverDTO{
		ID:            aggregate.ID().Google(),
		VehicleType:   p.VehicleType,
		VehicleNumber: p.VehicleNumber,
		LicenseNumber: p.LicenseNumber,
		Address:       p.Address,
		City:          p.City,
		State:         p.State,
		IsAvailable:   aggregate.IsAvailable(),
		CreatedAt:     aggregate.CreatedAt(),
		Version:       aggregate.Version(),
	}

	if loc, ok := aggregate.Location(); ok {
		lat, lng, address := loc.Latitude(), loc.Longitude(), loc.Address()
		dto.Location = LocationDTO{Latitude: &lat, Longitude: &lng, Address: &address}
	}

	return dto
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Location.Latitude != nil && dto.Location.Longitude != nil {
		address := ""
		if dto.Location.Address != nil {
			address = *dto.Location.Address
		}
		loc, locErr := kernel.NewLocation(*dto.Location.Latitude, *dto.Location.Longitude, address)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	profile := driver.Profile{
		VehicleType:   dto.VehicleType,
		VehicleNumber: dto.VehicleNumber,
		LicenseNumber: dto.LicenseNumber,
		Address:       dto.Address,
		City:          dto.City,
		State:         dto.State,
	}

	return driver.RestoreDriver(id, profile, location, dto.IsAvailable, dto.CreatedAt, dto.Version)
}
