package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByIDAndOwner retrieves an order only if it belongs to the given
	// owner. A missing order and an order owned by someone else are both
	// reported as errs.ObjectNotFoundError, so existence is not leaked.
	GetByIDAndOwner(ctx context.Context, id, ownerID kernel.UUID) (*order.Order, error)

	// Delete removes an order by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
