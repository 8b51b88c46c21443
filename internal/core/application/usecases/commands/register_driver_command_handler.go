package commands

import (
	"context"
	"errors"
	"time"

	"meddelivery/internal/core/domain/model/driver"
	"meddelivery/internal/pkg/errs"
)

// RegisterDriverCommandHandler creates a driver profile once per driver id.
// A second registration fails with errs.ErrValueIsInvalid.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	now        func() time.Time
}

func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := driver.NewDriver(cmd.DriverID(), cmd.Profile(), h.now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	_, err = driverRepo.Get(ctx, d.ID())
	switch {
	case err == nil:
		return errs.NewValueIsInvalidErrorWithCause("driver", errors.New("profile already exists"))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = driverRepo.Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
