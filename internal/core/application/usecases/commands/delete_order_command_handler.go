package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// DeleteOrderCommandHandler handles owner deletion of orders.
// The read, ownership check, and delete run in one transaction so a
// concurrent mutation cannot slip between the check and the write.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the order and returns its final snapshot.
// Returns errs.ObjectNotFoundError when the order is absent and
// order.ErrNotOrderOwner when it belongs to another user.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !existing.IsOwnedBy(cmd.OwnerID()) {
		return nil, order.ErrNotOrderOwner
	}

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
