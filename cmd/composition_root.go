package cmd

import (
	"log/slog"

	httpadapter "meddelivery/internal/adapters/in/http"
	"meddelivery/internal/adapters/out/postgres"
	"meddelivery/internal/core/application/usecases/commands"
	"meddelivery/internal/core/application/usecases/queries"
	"meddelivery/internal/core/domain/services"
	"meddelivery/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	estimator  services.DeliveryEstimator
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		estimator:  services.NewDeliveryEstimator(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterPharmacyCommandHandler() commands.RegisterPharmacyCommandHandler {
	return commands.NewRegisterPharmacyCommandHandler(c.pharmacyUoWFactory())
}

func (c *CompositionRoot) CreateAddMedicineCommandHandler() commands.AddMedicineCommandHandler {
	return commands.NewAddMedicineCommandHandler(c.pharmacyUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMedicineCommandHandler() commands.UpdateMedicineCommandHandler {
	return commands.NewUpdateMedicineCommandHandler(c.pharmacyUoWFactory())
}

func (c *CompositionRoot) CreateRemoveMedicineCommandHandler() commands.RemoveMedicineCommandHandler {
	return commands.NewRemoveMedicineCommandHandler(c.pharmacyUoWFactory())
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	return commands.NewUpdateDriverLocationCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreatePublishOutboxCommandHandler(publisher ports.MessagePublisher) commands.PublishOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPublishOutboxCommandHandler(f, publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyOrdersQueryHandler() queries.GetMyOrdersQueryHandler {
	return queries.NewGetMyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchMedicinesQueryHandler() queries.SearchMedicinesQueryHandler {
	return queries.NewSearchMedicinesQueryHandler(c.gormDB, c.estimator)
}

func (c *CompositionRoot) CreateGetMyPharmacyQueryHandler() queries.GetMyPharmacyQueryHandler {
	return queries.NewGetMyPharmacyQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyDriverQueryHandler() queries.GetMyDriverQueryHandler {
	return queries.NewGetMyDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTokenIssuer() (*httpadapter.TokenIssuer, error) {
	return httpadapter.NewTokenIssuer(c.cfg.JWTSecret, c.cfg.JWTTTL)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		ChangeOrderStatus:  c.CreateChangeOrderStatusCommandHandler(),
		AssignDriver:       c.CreateAssignDriverCommandHandler(),
		RegisterPharmacy:   c.CreateRegisterPharmacyCommandHandler(),
		AddMedicine:        c.CreateAddMedicineCommandHandler(),
		UpdateMedicine:     c.CreateUpdateMedicineCommandHandler(),
		RemoveMedicine:     c.CreateRemoveMedicineCommandHandler(),
		RegisterDriver:     c.CreateRegisterDriverCommandHandler(),
		MoveDriver:         c.CreateUpdateDriverLocationCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetMyOrders:        c.CreateGetMyOrdersQueryHandler(),
		GetAvailableOrders: c.CreateGetAvailableOrdersQueryHandler(),
		SearchMedicines:    c.CreateSearchMedicinesQueryHandler(),
		GetMyPharmacy:      c.CreateGetMyPharmacyQueryHandler(),
		GetMyDriver:        c.CreateGetMyDriverQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pharmacyUoWFactory() commands.PharmacyUoWFactory {
	return FuncPharmacyUoWFactory(func() commands.PharmacyUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPharmacyUoWFactory func() commands.PharmacyUoW

func (f FuncPharmacyUoWFactory) Create() commands.PharmacyUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}
