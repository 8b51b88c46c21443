package portal

import (
	"context"
	"errors"
	"sync"

	"meddelivery/internal/core/application/usecases/queries"
	"meddelivery/internal/core/domain/model/cart"
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Catalog is the part of the backend the customer portal shops against.
// *Client implements it.
type Catalog interface {
	SearchMedicines(ctx context.Context, text string, origin *kernel.Location) ([]cart.SearchResult, error)
	SubmitOrder(ctx context.Context, submission cart.Submission) (queries.OrderResponse, error)
}

var _ Catalog = (*Client)(nil)

// Shopper is the customer portal. Every change to the cart is written to the
// store before the call returns, so a restarted portal resumes the same cart.
type Shopper struct {
	customer kernel.Actor
	catalog  Catalog
	store    SessionStore

	mu   sync.Mutex
	cart *cart.Cart
}

func NewShopper(ctx context.Context, session *Session, catalog Catalog, store SessionStore) (*Shopper, error) {
	if session == nil {
		return nil, errs.NewValueIsRequiredError("session")
	}
	if catalog == nil {
		return nil, errs.NewValueIsRequiredError("catalog")
	}
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}

	actor, err := session.Actor()
	if err != nil {
		return nil, err
	}
	if !actor.Is(kernel.RoleCustomer, actor.ID()) {
		return nil, errs.NewActionIsForbiddenError(actor.String(), "shop")
	}

	c, err := store.LoadCart(ctx, actor.ID())
	if err != nil {
		return nil, err
	}

	return &Shopper{
		customer: actor,
		catalog:  catalog,
		store:    store,
		cart:     c,
	}, nil
}

func (s *Shopper) Search(ctx context.Context, text string, origin *kernel.Location) ([]cart.SearchResult, error) {
	return s.catalog.SearchMedicines(ctx, text, origin)
}

func (s *Shopper) Add(ctx context.Context, result cart.SearchResult) error {
	return s.change(ctx, func(c *cart.Cart) error {
		return c.AddItem(result)
	})
}

func (s *Shopper) SetQuantity(ctx context.Context, medicineID kernel.UUID, quantity int) error {
	return s.change(ctx, func(c *cart.Cart) error {
		return c.SetQuantity(medicineID, quantity)
	})
}

func (s *Shopper) Remove(ctx context.Context, medicineID kernel.UUID) error {
	return s.change(ctx, func(c *cart.Cart) error {
		c.RemoveItem(medicineID)
		return nil
	})
}

// change applies fn to a copy of the cart and keeps the copy only once it is
// stored. On any error the in-memory cart still matches the stored one.
func (s *Shopper) change(ctx context.Context, fn func(*cart.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cart.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.store.SaveCart(ctx, s.customer.ID(), next); err != nil {
		return err
	}

	s.cart = next
	return nil
}

func (s *Shopper) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Shopper) Lines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *Shopper) Groups() []cart.PharmacyGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.GroupByPharmacy()
}

// Checkout places one order per pharmacy through the catalog. The cart is
// saved afterwards whatever the outcome: cleared when every order was
// placed, untouched otherwise.
func (s *Shopper) Checkout(ctx context.Context, req cart.CheckoutRequest) (cart.CheckoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.cart.Checkout(ctx, req, s.submit)
	if errors.Is(err, cart.ErrCartIsEmpty) {
		return result, err
	}
	if saveErr := s.store.SaveCart(ctx, s.customer.ID(), s.cart); saveErr != nil {
		return result, errors.Join(err, saveErr)
	}
	return result, err
}

func (s *Shopper) submit(ctx context.Context, submission cart.Submission) (kernel.UUID, error) {
	placed, err := s.catalog.SubmitOrder(ctx, submission)
	if err != nil {
		return kernel.UUID{}, err
	}
	return placed.ID, nil
}
