package commands

import (
	"context"
)

type RemoveMedicineCommandHandler struct {
	uowFactory PharmacyUoWFactory
}

func NewRemoveMedicineCommandHandler(uowFactory PharmacyUoWFactory) RemoveMedicineCommandHandler {
	return RemoveMedicineCommandHandler{uowFactory: uowFactory}
}

func (h RemoveMedicineCommandHandler) Handle(ctx context.Context, cmd RemoveMedicineCommand) error {
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

	p, err := pharmacyRepo.Get(ctx, cmd.PharmacyID())
	if err != nil {
		return err
	}

	if err = p.RemoveMedicine(cmd.MedicineID()); err != nil {
		return err
	}

	if err = pharmacyRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
