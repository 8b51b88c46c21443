package commands

import (
	"context"

	"meddelivery/internal/core/domain/model/pharmacy"
)

type RegisterPharmacyCommandHandler struct {
	uowFactory PharmacyUoWFactory
}

func NewRegisterPharmacyCommandHandler(uowFactory PharmacyUoWFactory) RegisterPharmacyCommandHandler {
	return RegisterPharmacyCommandHandler{uowFactory: uowFactory}
}

func (h RegisterPharmacyCommandHandler) Handle(ctx context.Context, cmd RegisterPharmacyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := pharmacy.NewPharmacy(cmd.PharmacyID(), cmd.BusinessName(), cmd.Location())
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

	if err = uow.PharmacyRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
