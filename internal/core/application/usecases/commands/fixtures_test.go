package commands_test

import (
	"testing"
	"time"

	"meddelivery/internal/core/domain/model/driver"
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
	"meddelivery/internal/core/domain/model/pharmacy"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func actorWithID(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

func newLocation(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng, "test address")
	require.NoError(t, err)
	return loc
}

// newStockedPharmacy returns a pharmacy in central Delhi with one medicine.
func newStockedPharmacy(t *testing.T, stock int) (*pharmacy.Pharmacy, *pharmacy.Medicine) {
	t.Helper()
	p, err := pharmacy.NewPharmacy(kernel.NewUUID(), "Apollo", newLocation(t, 28.6139, 77.2090))
	require.NoError(t, err)
	m, err := p.AddMedicine(kernel.NewUUID(), "Paracetamol", decimal.RequireFromString("12.50"), stock)
	require.NoError(t, err)
	return p, m
}

func newItem(t *testing.T, m *pharmacy.Medicine, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(m.ID(), m.Name(), quantity, m.Price())
	require.NoError(t, err)
	return item
}

func newPendingOrder(t *testing.T, pharmacyID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Paracetamol", 2, decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		pharmacyID,
		[]order.Item{item},
		newLocation(t, 28.62, 77.21),
		order.UPI,
		order.Estimate{DistanceKm: 1.2, Minutes: 7},
		"",
		time.Now(),
	)
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func newDriver(t *testing.T, id kernel.UUID) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(id, driverProfile(), time.Now())
	require.NoError(t, err)
	return d
}

func driverProfile() driver.Profile {
	return driver.Profile{
		VehicleType:   "bike",
		VehicleNumber: "DL3CAB1234",
		LicenseNumber: "DL-0420110012345",
		Address:       "12 Lodhi Road",
		City:          "New Delhi",
		State:         "Delhi",
	}
}
