package queries

import (
	"context"

	"meddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle returns the oldest orders first.
func (h GetAvailableOrdersQueryHandler) Handle(ctx context.Context, query GetAvailableOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return findOrders(ctx, h.db,
		"WHERE o.status = ? AND o.driver_id IS NULL ORDER BY o.created_at, o.id LIMIT ?",
		order.Accepted.String(), AvailableOrdersLimit,
	)
}
