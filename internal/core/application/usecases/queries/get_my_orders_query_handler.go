package queries

import (
	"context"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetMyOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetMyOrdersQueryHandler(db *gorm.DB) GetMyOrdersQueryHandler {
	return GetMyOrdersQueryHandler{db: db}
}

func (h GetMyOrdersQueryHandler) Handle(ctx context.Context, query GetMyOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var column string
	switch query.Actor().Role() {
	case kernel.RoleCustomer:
		column = "o.customer_id"
	case kernel.RolePharmacy:
		column = "o.pharmacy_id"
	case kernel.RoleDriver:
		column = "o.driver_id"
	default:
		return nil, errs.NewActionIsForbiddenError(query.Actor().String(), "list orders")
	}

	return findOrders(ctx, h.db, "WHERE "+column+" = ? ORDER BY o.created_at DESC, o.id", query.Actor().ID().Google())
}
