package portal_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"meddelivery/internal/core/application/usecases/queries"
	"meddelivery/internal/core/domain/model/cart"
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/portal"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	mu        sync.Mutex
	results   []cart.SearchResult
	failFor   map[kernel.UUID]error
	submitted []cart.Submission
	placed    []queries.OrderResponse
}

func (c *fakeCatalog) SearchMedicines(context.Context, string, *kernel.Location) ([]cart.SearchResult, error) {
	return c.results, nil
}

func (c *fakeCatalog) SubmitOrder(_ context.Context, s cart.Submission) (queries.OrderResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitted = append(c.submitted, s)
	if err, ok := c.failFor[s.PharmacyID]; ok {
		return queries.OrderResponse{}, err
	}
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Subtotal())
	}
	resp := queries.OrderResponse{ID: kernel.NewUUID(), PharmacyID: s.PharmacyID, Status: "pending", TotalAmount: total}
	c.placed = append(c.placed, resp)
	return resp, nil
}

func checkoutRequest(t *testing.T) cart.CheckoutRequest {
	t.Helper()
	address, err := kernel.NewLocation(12.97, 77.59, "MG Road 1")
	require.NoError(t, err)
	return cart.CheckoutRequest{DeliveryAddress: address, PaymentMethod: order.Card}
}

func TestNewShopper(t *testing.T) {
	store, _ := newRedisStore(t)

	t.Run("requires a signed in session", func(t *testing.T) {
		_, err := portal.NewShopper(t.Context(), portal.NewSession(kernel.RoleCustomer), &fakeCatalog{}, store)
		assert.ErrorIs(t, err, portal.ErrNotSignedIn)
	})

	t.Run("requires a customer", func(t *testing.T) {
		session, _ := signedIn(t, kernel.RolePharmacy)
		_, err := portal.NewShopper(t.Context(), session, &fakeCatalog{}, store)
		assert.ErrorIs(t, err, errs.ErrActionIsForbidden)
	})

	t.Run("requires a catalog", func(t *testing.T) {
		session, _ := signedIn(t, kernel.RoleCustomer)
		_, err := portal.NewShopper(t.Context(), session, nil, store)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestShopper_CartSurvivesRestart(t *testing.T) {
	store, _ := newRedisStore(t)
	session, _ := signedIn(t, kernel.RoleCustomer)
	pharmacyID := kernel.NewUUID()
	paracetamol := searchResult(pharmacyID, "Apollo", "Paracetamol", "10")
	syrup := searchResult(pharmacyID, "Apollo", "Syrup", "25")
	catalog := &fakeCatalog{results: []cart.SearchResult{paracetamol, syrup}}

	shopper, err := portal.NewShopper(t.Context(), session, catalog, store)
	require.NoError(t, err)

	results, err := shopper.Search(t.Context(), "a", nil)
	require.NoError(t, err)
	for _, r := range results {
		require.NoError(t, shopper.Add(t.Context(), r))
	}
	require.NoError(t, shopper.SetQuantity(t.Context(), paracetamol.Medicine.ID, 2))

	restarted, err := portal.NewShopper(t.Context(), session, catalog, store)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(45).Equal(restarted.Total()))
	assert.Len(t, restarted.Lines(), 2)

	require.NoError(t, restarted.Remove(t.Context(), syrup.Medicine.ID))
	require.NoError(t, restarted.SetQuantity(t.Context(), paracetamol.Medicine.ID, 0))

	again, err := portal.NewShopper(t.Context(), session, catalog, store)
	require.NoError(t, err)
	assert.Empty(t, again.Lines())
}

func TestShopper_FailedSaveLeavesCartUnchanged(t *testing.T) {
	store, mr := newRedisStore(t)
	session, _ := signedIn(t, kernel.RoleCustomer)
	pharmacyID := kernel.NewUUID()
	paracetamol := searchResult(pharmacyID, "Apollo", "Paracetamol", "10")
	syrup := searchResult(pharmacyID, "Apollo", "Syrup", "25")
	shopper, err := portal.NewShopper(t.Context(), session, &fakeCatalog{}, store)
	require.NoError(t, err)
	require.NoError(t, shopper.Add(t.Context(), paracetamol))

	mr.SetError("LOADING redis is loading the dataset")

	require.Error(t, shopper.Add(t.Context(), syrup))
	require.Error(t, shopper.Add(t.Context(), paracetamol))
	require.Error(t, shopper.SetQuantity(t.Context(), paracetamol.Medicine.ID, 5))
	require.Error(t, shopper.Remove(t.Context(), paracetamol.Medicine.ID))

	lines := shopper.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, paracetamol.Medicine.ID, lines[0].MedicineID())
	assert.Equal(t, 1, lines[0].Quantity())
	assert.True(t, decimal.NewFromInt(10).Equal(shopper.Total()))

	mr.SetError("")

	require.NoError(t, shopper.Add(t.Context(), syrup))
	restarted, err := portal.NewShopper(t.Context(), session, &fakeCatalog{}, store)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(35).Equal(restarted.Total()))
}

func TestShopper_Checkout(t *testing.T) {
	t.Run("all groups placed clears the stored cart", func(t *testing.T) {
		store, mr := newRedisStore(t)
		session, actor := signedIn(t, kernel.RoleCustomer)
		catalog := &fakeCatalog{}
		shopper, err := portal.NewShopper(t.Context(), session, catalog, store)
		require.NoError(t, err)
		require.NoError(t, shopper.Add(t.Context(), searchResult(kernel.NewUUID(), "Apollo", "Paracetamol", "10")))
		require.NoError(t, shopper.Add(t.Context(), searchResult(kernel.NewUUID(), "MedPlus", "Syrup", "25")))

		result, err := shopper.Checkout(t.Context(), checkoutRequest(t))

		require.NoError(t, err)
		require.Len(t, result.Placed, 2)
		require.Len(t, catalog.placed, 2)
		totals := map[kernel.UUID]string{}
		for _, placed := range catalog.placed {
			totals[placed.ID] = placed.TotalAmount.StringFixed(2)
		}
		assert.Equal(t, "10.00", totals[result.Placed[0].OrderID])
		assert.Equal(t, "25.00", totals[result.Placed[1].OrderID])
		assert.Len(t, catalog.submitted, 2)
		assert.Empty(t, shopper.Lines())
		assert.False(t, mr.Exists("cart:"+actor.ID().String()))
	})

	t.Run("failure keeps the stored cart", func(t *testing.T) {
		store, _ := newRedisStore(t)
		session, _ := signedIn(t, kernel.RoleCustomer)
		p1, p2, p3 := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
		rejected := errors.New("out of stock")
		catalog := &fakeCatalog{failFor: map[kernel.UUID]error{p2: rejected}}
		shopper, err := portal.NewShopper(t.Context(), session, catalog, store)
		require.NoError(t, err)
		require.NoError(t, shopper.Add(t.Context(), searchResult(p1, "Apollo", "Paracetamol", "10")))
		require.NoError(t, shopper.Add(t.Context(), searchResult(p2, "MedPlus", "Syrup", "25")))
		require.NoError(t, shopper.Add(t.Context(), searchResult(p3, "Wellness", "Cetirizine", "4")))

		result, err := shopper.Checkout(t.Context(), checkoutRequest(t))

		require.ErrorIs(t, err, cart.ErrCheckoutIsIncomplete)
		assert.ErrorIs(t, err, rejected)
		require.Len(t, result.Placed, 1)
		assert.Equal(t, p1, result.Placed[0].Group.PharmacyID)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, p2, result.Failed[0].Group.PharmacyID)
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, p3, result.Skipped[0].PharmacyID)
		assert.Len(t, catalog.submitted, 2)

		restarted, err := portal.NewShopper(t.Context(), session, catalog, store)
		require.NoError(t, err)
		assert.Len(t, restarted.Lines(), 3)
		assert.Len(t, restarted.Groups(), 3)
	})

	t.Run("empty cart submits nothing", func(t *testing.T) {
		store, _ := newRedisStore(t)
		session, _ := signedIn(t, kernel.RoleCustomer)
		catalog := &fakeCatalog{}
		shopper, err := portal.NewShopper(t.Context(), session, catalog, store)
		require.NoError(t, err)

		_, err = shopper.Checkout(t.Context(), checkoutRequest(t))

		require.ErrorIs(t, err, cart.ErrCartIsEmpty)
		assert.Empty(t, catalog.submitted)
	})
}
