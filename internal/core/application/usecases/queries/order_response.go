// Package queries contains read-only operations in the CQRS split.
// Query handlers read through the database connection directly, bypassing
// the aggregate repositories, and return flat response structs.
package queries

import (
	"database/sql"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderResponse is the flat read model for a single order.
type OrderResponse struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	Quantity    int
	PizzaSize   order.PizzaSize
	OrderStatus order.Status
	TotalAmount float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// orderColumns is the select list shared by all order queries, in the
// scan order expected by scanOrderRow.
const orderColumns = "id, user_id, quantity, pizza_size, order_status, total_amount, created_at, updated_at"

// scanOrderRow maps one row of orderColumns onto an OrderResponse.
func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var (
		id, userID   uuid.UUID
		quantity     int
		size, status string
		total        float64
		createdAt    time.Time
		updatedAt    time.Time
	)

	if err := scan(&id, &userID, &quantity, &size, &status, &total, &createdAt, &updatedAt); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	orderStatus, err := order.ParseStatus(status)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:          orderID,
		UserID:      ownerID,
		Quantity:    quantity,
		PizzaSize:   order.ParsePizzaSize(size),
		OrderStatus: orderStatus,
		TotalAmount: total,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// collectOrderRows drains a result set of orderColumns rows.
func collectOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, err := scanOrderRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
