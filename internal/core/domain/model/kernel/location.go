package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0

	// EarthRadiusKm is the mean Earth radius used for great-circle distances.
	EarthRadiusKm = 6371.0
)

var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation")

// Location is a geographic point (WGS84 degrees) plus the free-text address
// it was resolved from. Two locations are equal when all three fields match.
type Location struct { //nolint:recvcheck // pointer receivers on setters only
	latitude  float64
	longitude float64
	address   string
	guard     guard.ConstructorGuard
}

// NewLocation validates latitude and longitude ranges. The address is trimmed
// and may be empty.
func NewLocation(latitude, longitude float64, address string) (Location, error) {
	loc := Location{
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Latitude() float64 {
	return l.latitude
}

func (l Location) Longitude() float64 {
	return l.longitude
}

func (l Location) Address() string {
	return l.address
}

func (l Location) String() string {
	if l.address == "" {
		return fmt.Sprintf("Location(%.6f,%.6f)", l.latitude, l.longitude)
	}
	return fmt.Sprintf("Location(%.6f,%.6f %q)", l.latitude, l.longitude, l.address)
}

func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// DistanceTo returns the haversine distance to other in kilometres, rounded
// to two decimal places. The result is symmetric and zero for the same point.
func (l Location) DistanceTo(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := degreesToRadians(l.latitude)
	lat2 := degreesToRadians(other.latitude)
	dLat := lat2 - lat1
	dLng := degreesToRadians(other.longitude - l.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return RoundKm(EarthRadiusKm * c), nil
}

// RoundKm rounds a distance to two decimal places.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	l.longitude = longitude
	return nil
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
