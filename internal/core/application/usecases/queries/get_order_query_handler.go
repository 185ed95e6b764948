package queries

import (
	"context"
	"database/sql"
	"errors"

	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order, applying the visibility
// rule: staff see everything, ordinary users only their own orders.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler over the given connection.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Both a missing order and an order owned by a
// different user (for non-staff requesters) come back as
// errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	tx := h.db.WithContext(ctx)
	if query.RequesterIsStaff() {
		tx = tx.Raw(
			"SELECT "+orderColumns+" FROM orders WHERE id = ?",
			query.OrderID().Bytes(),
		)
	} else {
		tx = tx.Raw(
			"SELECT "+orderColumns+" FROM orders WHERE id = ? AND user_id = ?",
			query.OrderID().Bytes(), query.RequesterID().Bytes(),
		)
	}

	row := tx.Row()
	resp, err := scanOrderRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	return resp, nil
}
