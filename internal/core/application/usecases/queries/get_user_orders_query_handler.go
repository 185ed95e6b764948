package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves the acting user's orders.
// Results come back in insertion order.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler over the given connection.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query and returns all orders owned by the user.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT "+orderColumns+" FROM orders WHERE user_id = ? ORDER BY created_at",
		query.OwnerID().Bytes(),
	).Rows()
	if err != nil {
		return nil, err
	}

	return collectOrderRows(rows)
}
