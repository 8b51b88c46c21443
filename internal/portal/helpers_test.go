package portal_test

import (
	"testing"

	"meddelivery/internal/core/domain/model/cart"
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/portal"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func signedIn(t *testing.T, role kernel.Role) (*portal.Session, kernel.Actor) {
	t.Helper()
	actor := newActor(t, role)
	session := portal.NewSession(role)
	require.NoError(t, session.SignIn(actor, "token-"+actor.ID().String()))
	return session, actor
}

func newRedisStore(t *testing.T) (*portal.RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return portal.NewRedisSessionStore(client, 0), mr
}

func searchResult(pharmacyID kernel.UUID, pharmacyName, medicine, price string) cart.SearchResult {
	return cart.SearchResult{
		Medicine: cart.MedicineRef{ID: kernel.NewUUID(), Name: medicine, Price: decimal.RequireFromString(price)},
		Pharmacy: cart.PharmacyRef{ID: pharmacyID, BusinessName: pharmacyName},
	}
}
