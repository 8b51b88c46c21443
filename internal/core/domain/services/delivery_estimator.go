package services

import (
	"math"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
)

const (
	DefaultBaseMinutes  = 5.0
	DefaultMinutesPerKm = 2.0
)

// DeliveryEstimator computes distance and delivery time. Minutes are
// base + perKm * distance, truncated to whole minutes.
type DeliveryEstimator struct {
	baseMinutes  float64
	minutesPerKm float64
}

func NewDeliveryEstimator() DeliveryEstimator {
	return DeliveryEstimator{
		baseMinutes:  DefaultBaseMinutes,
		minutesPerKm: DefaultMinutesPerKm,
	}
}

func (e DeliveryEstimator) Estimate(pharmacy, destination kernel.Location) (order.Estimate, error) {
	km, err := pharmacy.DistanceTo(destination)
	if err != nil {
		return order.Estimate{}, err
	}

	return order.Estimate{
		DistanceKm: km,
		Minutes:    e.Minutes(km),
	}, nil
}

// Minutes returns the delivery time for a distance already computed elsewhere,
// such as by the search query.
func (e DeliveryEstimator) Minutes(distanceKm float64) int {
	if e.baseMinutes == 0 && e.minutesPerKm == 0 {
		e = NewDeliveryEstimator()
	}
	return int(math.Floor(e.baseMinutes + e.minutesPerKm*distanceKm))
}
