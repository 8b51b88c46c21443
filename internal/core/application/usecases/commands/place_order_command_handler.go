package commands

import (
	"context"
	"time"

	"meddelivery/internal/core/domain/model/order"
	"meddelivery/internal/core/domain/services"
)

// PlaceOrderCommandHandler places an order and reserves its stock at the
// pharmacy in one transaction. Distance and delivery time are computed from
// the pharmacy's location; cash on delivery is refused for distant pharmacies.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	estimator  services.DeliveryEstimator
	now        func() time.Time
}

func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		estimator:  services.NewDeliveryEstimator(),
		now:        time.Now,
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pharmacyRepo := uow.PharmacyRepository()
	orderRepo := uow.OrderRepository()

	pharmacy, err := pharmacyRepo.Get(ctx, cmd.PharmacyID())
	if err != nil {
		return err
	}

	estimate, err := h.estimator.Estimate(pharmacy.Location(), cmd.DeliveryAddress())
	if err != nil {
		return err
	}

	placed, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Customer().ID(),
		pharmacy.ID(),
		cmd.Items(),
		cmd.DeliveryAddress(),
		cmd.PaymentMethod(),
		estimate,
		cmd.Notes(),
		h.now(),
	)
	if err != nil {
		return err
	}

	if err = pharmacy.Reserve(placed.Items()); err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return err
	}

	if err = pharmacyRepo.Update(ctx, pharmacy); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
