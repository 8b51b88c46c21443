package commands

import (
	"context"
	"time"
)

// AssignDriverCommandHandler hands an order to a registered driver. The
// order decides first, so only its pharmacy learns whether a driver id is
// registered. An unknown driver fails with errs.ErrObjectNotFound.
type AssignDriverCommandHandler struct {
	uowFactory AssignmentUoWFactory
	now        func() time.Time
}

func NewAssignDriverCommandHandler(uowFactory AssignmentUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.AssignDriver(cmd.Pharmacy(), cmd.DriverID(), h.now()); err != nil {
		return err
	}

	if _, err = uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
