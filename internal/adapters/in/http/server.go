// Package http is the REST adapter: an echo server whose handlers turn
// requests into commands and queries.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"meddelivery/internal/core/application/usecases/commands"
	"meddelivery/internal/core/application/usecases/queries"
	"meddelivery/internal/core/domain/model/cart"
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
	"meddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers are the use cases the server dispatches to.
type Handlers struct {
	PlaceOrder        CommandHandler[commands.PlaceOrderCommand]
	ChangeOrderStatus CommandHandler[commands.ChangeOrderStatusCommand]
	AssignDriver      CommandHandler[commands.AssignDriverCommand]
	RegisterPharmacy  CommandHandler[commands.RegisterPharmacyCommand]
	AddMedicine       CommandHandler[commands.AddMedicineCommand]
	UpdateMedicine    CommandHandler[commands.UpdateMedicineCommand]
	RemoveMedicine    CommandHandler[commands.RemoveMedicineCommand]
	RegisterDriver    CommandHandler[commands.RegisterDriverCommand]
	MoveDriver        CommandHandler[commands.UpdateDriverLocationCommand]

	GetOrder           QueryHandler[queries.GetOrderQuery, queries.OrderResponse]
	GetMyOrders        QueryHandler[queries.GetMyOrdersQuery, []queries.OrderResponse]
	GetAvailableOrders QueryHandler[queries.GetAvailableOrdersQuery, []queries.OrderResponse]
	SearchMedicines    QueryHandler[queries.SearchMedicinesQuery, []cart.SearchResult]
	GetMyPharmacy      QueryHandler[queries.GetMyPharmacyQuery, queries.PharmacyResponse]
	GetMyDriver        QueryHandler[queries.GetMyDriverQuery, queries.DriverResponse]
}

var _ ServerInterface = (*Server)(nil)

type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With(slog.String("component", "http")),
	}
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	customer, err := s.actor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body NewOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	items := make([]order.Item, 0, len(body.Items))
	var itemErrs []error
	for _, it := range body.Items {
		medicineID, idErr := kernel.UUIDFromGoogle(it.MedicineID)
		if idErr != nil {
			itemErrs = append(itemErrs, idErr)
			continue
		}
		item, itemErr := order.NewItem(medicineID, it.MedicineName, it.Quantity, it.UnitPrice)
		if itemErr != nil {
			itemErrs = append(itemErrs, itemErr)
			continue
		}
		items = append(items, item)
	}
	if err = errors.Join(itemErrs...); err != nil {
		return s.writeError(ctx, err)
	}

	pharmacyID, pharmacyErr := kernel.UUIDFromGoogle(body.PharmacyID)
	address, addressErr := body.DeliveryAddress.toLocation()
	method, methodErr := order.ParsePaymentMethod(body.PaymentMethod)
	if err = errors.Join(pharmacyErr, addressErr, methodErr); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), customer, pharmacyID, items, address, method, body.Notes)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusCreated, cmd.OrderID(), customer)
}

// GetMyOrders handles GET /api/v1/orders/my.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetMyOrdersQuery(actor)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.handlers.GetMyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id uuid.UUID) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, resp)
}

// ChangeOrderStatus handles PUT /api/v1/orders/{id}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, id uuid.UUID) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body StatusChangeRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	orderID, idErr := kernel.UUIDFromGoogle(id)
	target, statusErr := order.ParseStatus(body.Status)
	if err = errors.Join(idErr, statusErr); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actor, target)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return s.writeOrder(ctx, http.StatusOK, orderID, actor)
}

// AssignDriver handles POST /api/v1/orders/{id}/assign-driver.
func (s *Server) AssignDriver(ctx echo.Context, id uuid.UUID) error {
	pharmacy, err := s.actor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body DriverAssignmentRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	orderID, idErr := kernel.UUIDFromGoogle(id)
	driverID, driverErr := kernel.UUIDFromGoogle(body.DriverID)
	if err = errors.Join(idErr, driverErr); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, pharmacy, driverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return s.writeOrder(ctx, http.StatusOK, orderID, pharmacy)
}

// GetAvailableOrders handles GET /api/v1/drivers/available-orders.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	driver, err := s.actor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetAvailableOrdersQuery(driver)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.handlers.GetAvailableOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// SearchMedicines handles GET /api/v1/medicines/search.
func (s *Server) SearchMedicines(ctx echo.Context, params SearchMedicinesParams) error {
	query, err := queries.NewSearchMedicinesQuery(params.Q, params.Lat, params.Lng)
	if err != nil {
		return s.writeError(ctx, err)
	}

	results, err := s.handlers.SearchMedicines.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, results)
}

// RegisterPharmacy handles POST /api/v1/pharmacies.
func (s *Server) RegisterPharmacy(ctx echo.Context) error {
	owner, err := s.actor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body NewPharmacyRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	location, err := body.Location.toLocation()
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterPharmacyCommand(owner, body.BusinessName, location)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.RegisterPharmacy.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: cmd.PharmacyID()})
}

// GetMyPharmacy handles GET /api/v1/pharmacies/my.
func (s *Server) GetMyPharmacy(ctx echo.Context) error {
	owner, err := s.actor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetMyPharmacyQuery(owner)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.handlers.GetMyPharmacy.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, resp)
}

// AddMedicine handles POST /api/v1/pharmacies/my/medicines.
func (s *Server) AddMedicine(ctx echo.Context) error {
	owner, err := s.actor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body NewMedicineRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	cmd, err := commands.NewAddMedicineCommand(owner, kernel.NewUUID(), body.Name, body.Price, body.Stock)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.AddMedicine.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: cmd.MedicineID()})
}

// UpdateMedicine handles PUT /api/v1/pharmacies/my/medicines/{medicineId}.
func (s *Server) UpdateMedicine(ctx echo.Context, medicineID uuid.UUID) error {
	owner, err := s.actor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body NewMedicineRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	id, err := kernel.UUIDFromGoogle(medicineID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateMedicineCommand(owner, id, body.Name, body.Price, body.Stock)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.UpdateMedicine.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetMyPharmacyQuery(owner)
	if err != nil {
		return s.writeError(ctx, err)
	}
	resp, err := s.handlers.GetMyPharmacy.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	for _, m := range resp.Medicines {
		if m.ID == id {
			return ctx.JSON(http.StatusOK, m)
		}
	}
	return s.writeError(ctx, errs.NewObjectNotFoundError("medicine", id))
}

// RemoveMedicine handles DELETE /api/v1/pharmacies/my/medicines/{medicineId}.
func (s *Server) RemoveMedicine(ctx echo.Context, medicineID uuid.UUID) error {
	owner, err := s.actor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	id, err := kernel.UUIDFromGoogle(medicineID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveMedicineCommand(owner, id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.RemoveMedicine.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body NewDriverRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	cmd, err := commands.NewRegisterDriverCommand(actor, body.toProfile())
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.RegisterDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return s.writeDriver(ctx, http.StatusCreated, actor)
}

// GetMyDriver handles GET /api/v1/drivers/my.
func (s *Server) GetMyDriver(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.writeDriver(ctx, http.StatusOK, actor)
}

// UpdateDriverLocation handles PUT /api/v1/drivers/location.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body AddressRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	location, err := body.toLocation()
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(actor, location)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.MoveDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return s.writeDriver(ctx, http.StatusOK, actor)
}

// writeOrder answers with the order as actor now sees it.
func (s *Server) writeOrder(ctx echo.Context, code int, orderID kernel.UUID, actor kernel.Actor) error {
	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(code, resp)
}

func (s *Server) writeDriver(ctx echo.Context, code int, actor kernel.Actor) error {
	query, err := queries.NewGetMyDriverQuery(actor)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.handlers.GetMyDriver.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(code, resp)
}

func (s *Server) actor(ctx echo.Context) (kernel.Actor, error) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return kernel.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Missing bearer token")
	}
	return actor, nil
}

func (s *Server) badRequest(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
