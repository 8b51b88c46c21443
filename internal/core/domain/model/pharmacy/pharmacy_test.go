package pharmacy_test

import (
	"testing"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
	"meddelivery/internal/core/domain/model/pharmacy"
	"meddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPharmacy(t *testing.T) *pharmacy.Pharmacy {
	t.Helper()
	loc, err := kernel.NewLocation(28.6139, 77.209, "Connaught Place")
	require.NoError(t, err)
	p, err := pharmacy.NewPharmacy(kernel.NewUUID(), "  Apollo Pharmacy ", loc)
	require.NoError(t, err)
	return p
}

func addMedicine(t *testing.T, p *pharmacy.Pharmacy, name string, stock int) *pharmacy.Medicine {
	t.Helper()
	m, err := p.AddMedicine(kernel.NewUUID(), name, decimal.RequireFromString("12.50"), stock)
	require.NoError(t, err)
	return m
}

func item(t *testing.T, m *pharmacy.Medicine, quantity int) order.Item {
	t.Helper()
	i, err := order.NewItem(m.ID(), m.Name(), quantity, m.Price())
	require.NoError(t, err)
	return i
}

func TestNewPharmacy(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p := newPharmacy(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, "Apollo Pharmacy", p.BusinessName())
		assert.True(t, p.IsActive())
		assert.Empty(t, p.Medicines())
		assert.Equal(t, 0, p.Version())
	})

	t.Run("invalid", func(t *testing.T) {
		p, err := pharmacy.NewPharmacy(kernel.UUID{}, "", kernel.Location{})

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
		assert.Contains(t, err.Error(), "businessName")
	})

	t.Run("nil pharmacy", func(t *testing.T) {
		var p *pharmacy.Pharmacy

		require.ErrorIs(t, p.Validate(), pharmacy.ErrPharmacyIsNotConstructed)
	})
}

func TestPharmacy_AddMedicine(t *testing.T) {
	p := newPharmacy(t)
	m := addMedicine(t, p, "Paracetamol", 10)

	found, ok := p.Medicine(m.ID())
	require.True(t, ok)
	assert.Equal(t, "Paracetamol", found.Name())

	_, err := p.AddMedicine(m.ID(), "Again", decimal.NewFromInt(1), 1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = p.AddMedicine(kernel.NewUUID(), " ", decimal.NewFromInt(-1), -1)
	require.Error(t, err)
	assert.Len(t, p.Medicines(), 1)
}

func TestPharmacy_UpdateMedicine(t *testing.T) {
	t.Run("restocks and reprices", func(t *testing.T) {
		p := newPharmacy(t)
		m := addMedicine(t, p, "Paracetamol", 0)

		updated, err := p.UpdateMedicine(m.ID(), " Paracetamol 650 ", decimal.RequireFromString("15.25"), 30)

		require.NoError(t, err)
		assert.Same(t, m, updated)
		assert.Equal(t, "Paracetamol 650", m.Name())
		assert.True(t, decimal.RequireFromString("15.25").Equal(m.Price()))
		assert.Equal(t, 30, m.Stock())
		require.NoError(t, p.Reserve([]order.Item{item(t, m, 30)}))
	})

	t.Run("invalid values change nothing", func(t *testing.T) {
		p := newPharmacy(t)
		m := addMedicine(t, p, "Paracetamol", 4)

		_, err := p.UpdateMedicine(m.ID(), "", decimal.RequireFromString("-1"), -3)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Paracetamol", m.Name())
		assert.True(t, decimal.RequireFromString("12.50").Equal(m.Price()))
		assert.Equal(t, 4, m.Stock())
	})

	t.Run("unknown medicine", func(t *testing.T) {
		p := newPharmacy(t)

		_, err := p.UpdateMedicine(kernel.NewUUID(), "Zinc", decimal.NewFromInt(1), 1)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestPharmacy_RemoveMedicine(t *testing.T) {
	p := newPharmacy(t)
	paracetamol := addMedicine(t, p, "Paracetamol", 4)
	cetirizine := addMedicine(t, p, "Cetirizine", 2)
	listed := p.Medicines()

	require.NoError(t, p.RemoveMedicine(paracetamol.ID()))

	require.Len(t, p.Medicines(), 1)
	assert.Same(t, cetirizine, p.Medicines()[0])
	assert.Len(t, listed, 2)
	assert.Same(t, paracetamol, listed[0])
	require.ErrorIs(t, p.RemoveMedicine(paracetamol.ID()), errs.ErrObjectNotFound)
	require.ErrorIs(t, p.Reserve([]order.Item{item(t, paracetamol, 1)}), errs.ErrObjectNotFound)
}

func TestPharmacy_Reserve(t *testing.T) {
	t.Run("decrements every medicine", func(t *testing.T) {
		p := newPharmacy(t)
		a := addMedicine(t, p, "Paracetamol", 10)
		b := addMedicine(t, p, "Cetirizine", 3)

		require.NoError(t, p.Reserve([]order.Item{item(t, a, 4), item(t, b, 3)}))

		assert.Equal(t, 6, a.Stock())
		assert.Equal(t, 0, b.Stock())
		assert.False(t, b.InStock())
	})

	t.Run("all or nothing", func(t *testing.T) {
		p := newPharmacy(t)
		a := addMedicine(t, p, "Paracetamol", 10)
		b := addMedicine(t, p, "Cetirizine", 1)

		err := p.Reserve([]order.Item{item(t, a, 4), item(t, b, 2)})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "only 1 of Cetirizine in stock")
		assert.Equal(t, 10, a.Stock())
		assert.Equal(t, 1, b.Stock())
	})

	t.Run("quantities of one medicine add up", func(t *testing.T) {
		p := newPharmacy(t)
		a := addMedicine(t, p, "Paracetamol", 5)

		err := p.Reserve([]order.Item{item(t, a, 3), item(t, a, 3)})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 5, a.Stock())
	})

	t.Run("unknown medicine", func(t *testing.T) {
		p := newPharmacy(t)
		other, err := pharmacy.NewMedicine(kernel.NewUUID(), "Elsewhere", decimal.NewFromInt(1), 100)
		require.NoError(t, err)

		err = p.Reserve([]order.Item{item(t, other, 1)})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("inactive pharmacy", func(t *testing.T) {
		p := newPharmacy(t)
		a := addMedicine(t, p, "Paracetamol", 5)
		p.SetActive(false)

		err := p.Reserve([]order.Item{item(t, a, 1)})

		require.ErrorIs(t, err, pharmacy.ErrPharmacyIsInactive)
		assert.Equal(t, 5, a.Stock())
	})
}

func TestMedicine_Restock(t *testing.T) {
	m, err := pharmacy.NewMedicine(kernel.NewUUID(), "Ibuprofen", decimal.NewFromInt(3), 0)
	require.NoError(t, err)

	require.NoError(t, m.Restock(7))
	assert.Equal(t, 7, m.Stock())
	require.ErrorIs(t, m.Restock(0), errs.ErrValueIsInvalid)
}

func TestRestorePharmacy(t *testing.T) {
	loc, err := kernel.NewLocation(1, 1, "")
	require.NoError(t, err)
	m, err := pharmacy.NewMedicine(kernel.NewUUID(), "Ibuprofen", decimal.NewFromInt(3), 2)
	require.NoError(t, err)

	p, err := pharmacy.RestorePharmacy(kernel.NewUUID(), "Wellness", loc, false, []*pharmacy.Medicine{m}, 7)

	require.NoError(t, err)
	assert.False(t, p.IsActive())
	assert.Equal(t, 7, p.Version())
	assert.Len(t, p.Medicines(), 1)

	_, err = pharmacy.RestorePharmacy(kernel.NewUUID(), "Wellness", loc, true, []*pharmacy.Medicine{{}}, 0)
	require.ErrorIs(t, err, pharmacy.ErrMedicineIsNotConstructed)
}
