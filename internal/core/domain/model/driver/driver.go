package driver

import (
	"errors"
	"strings"
	"time"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

// Profile is what a driver registers with: the vehicle and the home region.
type Profile struct {
	VehicleType   string
	VehicleNumber string
	LicenseNumber string
	Address       string
	City          string
	State         string
}

// Validate reports every missing field at once.
func (p Profile) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"vehicleType", p.VehicleType},
		{"vehicleNumber", p.VehicleNumber},
		{"licenseNumber", p.LicenseNumber},
		{"address", p.Address},
		{"city", p.City},
		{"state", p.State},
	}

	var problems []error
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(field.name))
		}
	}
	return errors.Join(problems...)
}

func (p Profile) trimmed() Profile {
	return Profile{
		VehicleType:   strings.TrimSpace(p.VehicleType),
		VehicleNumber: strings.ToUpper(strings.TrimSpace(p.VehicleNumber)),
		LicenseNumber: strings.TrimSpace(p.LicenseNumber),
		Address:       strings.TrimSpace(p.Address),
		City:          strings.TrimSpace(p.City),
		State:         strings.TrimSpace(p.State),
	}
}

// Driver is the aggregate root for one delivery driver.
type Driver struct {
	id          kernel.UUID
	profile     Profile
	location    *kernel.Location
	isAvailable bool
	createdAt   time.Time
	version     int

	guard guard.ConstructorGuard
}

// NewDriver registers an available driver whose location is not known yet.
func NewDriver(id kernel.UUID, profile Profile, now time.Time) (*Driver, error) {
	d := &Driver{
		isAvailable: true,
		createdAt:   now.UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setProfile(profile),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func RestoreDriver(
	id kernel.UUID,
	profile Profile,
	location *kernel.Location,
	isAvailable bool,
	createdAt time.Time,
	version int,
) (*Driver, error) {
	d := &Driver{
		isAvailable: isAvailable,
		createdAt:   createdAt,
		version:     version,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setProfile(profile),
	); err != nil {
		return nil, err
	}
	if location != nil {
		if err := d.MoveTo(*location); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Profile() Profile {
	return d.profile
}

// Location returns the last reported position and false when there is none.
func (d *Driver) Location() (kernel.Location, bool) {
	if d.location == nil {
		return kernel.Location{}, false
	}
	return *d.location, true
}

func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Driver) Version() int {
	return d.version
}

// MoveTo records the driver's current position.
func (d *Driver) MoveTo(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = &location
	return nil
}

func (d *Driver) SetAvailable(available bool) {
	d.isAvailable = available
}

// A driver records no domain events; these satisfy kernel.AggregateRoot.

func (d *Driver) DomainEvents() []kernel.DomainEvent {
	return nil
}

func (d *Driver) ClearDomainEvents() {}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setProfile(profile Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	d.profile = profile.trimmed()
	return nil
}
