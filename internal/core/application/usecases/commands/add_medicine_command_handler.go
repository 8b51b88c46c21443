package commands

import (
	"context"
)

type AddMedicineCommandHandler struct {
	uowFactory PharmacyUoWFactory
}

func NewAddMedicineCommandHandler(uowFactory PharmacyUoWFactory) AddMedicineCommandHandler {
	return AddMedicineCommandHandler{uowFactory: uowFactory}
}

func (h AddMedicineCommandHandler) Handle(ctx context.Context, cmd AddMedicineCommand) error {
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

	if _, err = p.AddMedicine(cmd.MedicineID(), cmd.Name(), cmd.Price(), cmd.Stock()); err != nil {
		return err
	}

	if err = pharmacyRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
