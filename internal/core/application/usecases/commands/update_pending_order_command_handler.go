package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// UpdatePendingOrderCommandHandler handles owner edits of pending orders.
// The lookup is scoped to the owner, so an order that exists but belongs to
// someone else is indistinguishable from a missing one.
type UpdatePendingOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdatePendingOrderCommandHandler creates a handler for pending-order edits.
func NewUpdatePendingOrderCommandHandler(uowFactory OrderUoWFactory) UpdatePendingOrderCommandHandler {
	return UpdatePendingOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the edit and returns the updated order with its
// recomputed total. Returns errs.ObjectNotFoundError when the order is
// absent or not owned by the caller, and order.ErrOrderNotPending when the
// order has already left the PENDING status.
func (h *UpdatePendingOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePendingOrderCommand,
) (*order.Order, error) {
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

	existing, err := orderRepo.GetByIDAndOwner(ctx, cmd.OrderID(), cmd.OwnerID())
	if err != nil {
		return nil, err
	}

	quantity := existing.Quantity()
	if cmd.Quantity() != nil {
		quantity = *cmd.Quantity()
	}

	size := existing.Size()
	if cmd.Size() != nil {
		size = *cmd.Size()
	}

	if err = existing.UpdateDetails(quantity, size); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
