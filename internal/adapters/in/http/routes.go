package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

// ServerInterface lists the operations of api/openapi.yaml.
type ServerInterface interface {
	PlaceOrder(ctx echo.Context) error
	GetMyOrders(ctx echo.Context) error
	GetOrder(ctx echo.Context, id uuid.UUID) error
	ChangeOrderStatus(ctx echo.Context, id uuid.UUID) error
	AssignDriver(ctx echo.Context, id uuid.UUID) error
	GetAvailableOrders(ctx echo.Context) error
	SearchMedicines(ctx echo.Context, params SearchMedicinesParams) error
	RegisterPharmacy(ctx echo.Context) error
	GetMyPharmacy(ctx echo.Context) error
	AddMedicine(ctx echo.Context) error
	UpdateMedicine(ctx echo.Context, medicineID uuid.UUID) error
	RemoveMedicine(ctx echo.Context, medicineID uuid.UUID) error
	RegisterDriver(ctx echo.Context) error
	GetMyDriver(ctx echo.Context) error
	UpdateDriverLocation(ctx echo.Context) error
}

type SearchMedicinesParams struct {
	Q   string
	Lat *float64
	Lng *float64
}

// serverInterfaceWrapper binds path and query parameters before calling the
// operation.
type serverInterfaceWrapper struct {
	handler ServerInterface
}

func (w serverInterfaceWrapper) bindOrderID(ctx echo.Context) (uuid.UUID, error) {
	return bindPathUUID(ctx, "id")
}

func bindPathUUID(ctx echo.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func (w serverInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.handler.PlaceOrder(ctx)
}

func (w serverInterfaceWrapper) GetMyOrders(ctx echo.Context) error {
	return w.handler.GetMyOrders(ctx)
}

func (w serverInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := w.bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.handler.GetOrder(ctx, id)
}

func (w serverInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	id, err := w.bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.handler.ChangeOrderStatus(ctx, id)
}

func (w serverInterfaceWrapper) AssignDriver(ctx echo.Context) error {
	id, err := w.bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.handler.AssignDriver(ctx, id)
}

func (w serverInterfaceWrapper) GetAvailableOrders(ctx echo.Context) error {
	return w.handler.GetAvailableOrders(ctx)
}

func (w serverInterfaceWrapper) SearchMedicines(ctx echo.Context) error {
	var params SearchMedicinesParams

	if err := runtime.BindQueryParameter("form", true, true, "q", ctx.QueryParams(), &params.Q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter q: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "lat", ctx.QueryParams(), &params.Lat); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lat: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "lng", ctx.QueryParams(), &params.Lng); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lng: %s", err))
	}

	return w.handler.SearchMedicines(ctx, params)
}

func (w serverInterfaceWrapper) RegisterPharmacy(ctx echo.Context) error {
	return w.handler.RegisterPharmacy(ctx)
}

func (w serverInterfaceWrapper) GetMyPharmacy(ctx echo.Context) error {
	return w.handler.GetMyPharmacy(ctx)
}

func (w serverInterfaceWrapper) AddMedicine(ctx echo.Context) error {
	return w.handler.AddMedicine(ctx)
}

func (w serverInterfaceWrapper) UpdateMedicine(ctx echo.Context) error {
	medicineID, err := bindPathUUID(ctx, "medicineId")
	if err != nil {
		return err
	}
	return w.handler.UpdateMedicine(ctx, medicineID)
}

func (w serverInterfaceWrapper) RemoveMedicine(ctx echo.Context) error {
	medicineID, err := bindPathUUID(ctx, "medicineId")
	if err != nil {
		return err
	}
	return w.handler.RemoveMedicine(ctx, medicineID)
}

func (w serverInterfaceWrapper) RegisterDriver(ctx echo.Context) error {
	return w.handler.RegisterDriver(ctx)
}

func (w serverInterfaceWrapper) GetMyDriver(ctx echo.Context) error {
	return w.handler.GetMyDriver(ctx)
}

func (w serverInterfaceWrapper) UpdateDriverLocation(ctx echo.Context) error {
	return w.handler.UpdateDriverLocation(ctx)
}

// RegisterHandlers mounts the operations on g, whose prefix is BasePath.
func RegisterHandlers(g *echo.Group, si ServerInterface) {
	w := serverInterfaceWrapper{handler: si}

	g.POST("/orders", w.PlaceOrder)
	g.GET("/orders/my", w.GetMyOrders)
	g.GET("/orders/:id", w.GetOrder)
	g.PUT("/orders/:id/status", w.ChangeOrderStatus)
	g.POST("/orders/:id/assign-driver", w.AssignDriver)
	g.GET("/drivers/available-orders", w.GetAvailableOrders)
	g.GET("/medicines/search", w.SearchMedicines)
	g.POST("/pharmacies", w.RegisterPharmacy)
	g.GET("/pharmacies/my", w.GetMyPharmacy)
	g.POST("/pharmacies/my/medicines", w.AddMedicine)
	g.PUT("/pharmacies/my/medicines/:medicineId", w.UpdateMedicine)
	g.DELETE("/pharmacies/my/medicines/:medicineId", w.RemoveMedicine)
	g.POST("/drivers", w.RegisterDriver)
	g.GET("/drivers/my", w.GetMyDriver)
	g.PUT("/drivers/location", w.UpdateDriverLocation)
}
