package commands

import (
	"context"
)

type UpdateMedicineCommandHandler struct {
	uowFactory PharmacyUoWFactory
}

func NewUpdateMedicineCommandHandler(uowFactory PharmacyUoWFactory) UpdateMedicineCommandHandler {
	return UpdateMedicineCommandHandler{uowFactory: uowFactory}
}

func (h UpdateMedicineCommandHandler) Handle(ctx context.Context, cmd UpdateMedicineCommand) error {
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

	if _, err = p.UpdateMedicine(cmd.MedicineID(), cmd.Name(), cmd.Price(), cmd.Stock()); err != nil {
		return err
	}

	if err = pharmacyRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
