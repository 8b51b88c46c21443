package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
	"meddelivery/internal/pkg/errs"
)

var (
	ErrCartIsEmpty          = errors.New("cart is empty")
	ErrCheckoutIsIncomplete = errors.New("checkout is incomplete")
)

// CheckoutRequest carries what the shopper enters once for all pharmacy orders.
type CheckoutRequest struct {
	DeliveryAddress kernel.Location
	PaymentMethod   order.PaymentMethod
	Notes           string
}

func (r CheckoutRequest) Validate() error {
	return errors.Join(r.DeliveryAddress.Validate(), r.PaymentMethod.Validate())
}

// Submission is the order payload for one pharmacy group. Items are copies
// of the cart lines.
type Submission struct {
	PharmacyID      kernel.UUID
	Items           []order.Item
	DeliveryAddress kernel.Location
	PaymentMethod   order.PaymentMethod
	Notes           string
}

// SubmitFunc places one submission and returns the id of the created order.
type SubmitFunc func(ctx context.Context, submission Submission) (kernel.UUID, error)

type PlacedGroup struct {
	Group   PharmacyGroup
	OrderID kernel.UUID
}

type FailedGroup struct {
	Group PharmacyGroup
	Err   error
}

// CheckoutResult reports the outcome of every pharmacy group. Skipped groups
// were not attempted because an earlier group failed.
type CheckoutResult struct {
	Placed  []PlacedGroup
	Failed  []FailedGroup
	Skipped []PharmacyGroup
}

func (r CheckoutResult) IsComplete() bool {
	return len(r.Failed) == 0 && len(r.Skipped) == 0
}

// Err returns nil when every group was placed, otherwise an error wrapping
// ErrCheckoutIsIncomplete and the submission errors.
func (r CheckoutResult) Err() error {
	if r.IsComplete() {
		return nil
	}

	total := len(r.Placed) + len(r.Failed) + len(r.Skipped)
	causes := make([]error, 0, len(r.Failed))
	names := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		causes = append(causes, f.Err)
		names = append(names, f.Group.PharmacyID.String())
	}

	return fmt.Errorf("%w: %d of %d pharmacy orders placed, failed: [%s]: %w",
		ErrCheckoutIsIncomplete, len(r.Placed), total, strings.Join(names, ", "), errors.Join(causes...))
}

// Checkout submits one order per pharmacy group, sequentially, stopping at the
// first failure. The cart is cleared only if all groups were placed. The
// returned error is CheckoutResult.Err().
func (c *Cart) Checkout(ctx context.Context, req CheckoutRequest, submit SubmitFunc) (CheckoutResult, error) {
	if c.IsEmpty() {
		return CheckoutResult{}, ErrCartIsEmpty
	}
	if submit == nil {
		return CheckoutResult{}, errs.NewValueIsRequiredError("submit")
	}
	if err := req.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	groups := c.GroupByPharmacy()
	submissions := make([]Submission, 0, len(groups))
	for _, g := range groups {
		s, err := newSubmission(g, req)
		if err != nil {
			return CheckoutResult{}, err
		}
		submissions = append(submissions, s)
	}

	var result CheckoutResult
	for i, g := range groups {
		orderID, err := submitOne(ctx, submit, submissions[i])
		if err != nil {
			result.Failed = append(result.Failed, FailedGroup{Group: g, Err: err})
			result.Skipped = append(result.Skipped, groups[i+1:]...)
			break
		}
		result.Placed = append(result.Placed, PlacedGroup{Group: g, OrderID: orderID})
	}

	if result.IsComplete() {
		c.Clear()
	}

	return result, result.Err()
}

func submitOne(ctx context.Context, submit SubmitFunc, s Submission) (kernel.UUID, error) {
	if err := ctx.Err(); err != nil {
		return kernel.UUID{}, err
	}
	return submit(ctx, s)
}

func newSubmission(g PharmacyGroup, req CheckoutRequest) (Submission, error) {
	items := make([]order.Item, 0, len(g.Lines))
	for _, l := range g.Lines {
		item, err := l.ToOrderItem()
		if err != nil {
			return Submission{}, err
		}
		items = append(items, item)
	}

	return Submission{
		PharmacyID:      g.PharmacyID,
		Items:           items,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           strings.TrimSpace(req.Notes),
	}, nil
}
