package queries

import (
	"context"

	"meddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler returns the order if the actor is its customer, its
// pharmacy or its assigned driver. A missing order is errs.ErrObjectNotFound,
// somebody else's order is errs.ErrActionIsForbidden.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := findOrders(ctx, h.db, "WHERE o.id = ?", query.OrderID().Google())
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	if !orders[0].isVisibleTo(query.Actor()) {
		return OrderResponse{}, errs.NewActionIsForbiddenError(query.Actor().String(), "view order "+query.OrderID().String())
	}
	return orders[0], nil
}
