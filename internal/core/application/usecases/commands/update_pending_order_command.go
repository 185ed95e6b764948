package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var ErrUpdatePendingOrderCommandIsNotConstructed = errors.New(
	"UpdatePendingOrderCommand must be created via NewUpdatePendingOrderCommand constructor",
)

// UpdatePendingOrderCommand represents an owner's request to change the
// quantity and/or size of one of their orders. Either field may be nil,
// meaning "keep the current value". Only PENDING orders accept the change.
type UpdatePendingOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	ownerID  kernel.UUID
	quantity *int
	size     *order.PizzaSize

	guard guard.ConstructorGuard
}

// NewUpdatePendingOrderCommand creates a command to edit a pending order.
// Validates both identifiers and, when supplied, that the quantity is positive.
func NewUpdatePendingOrderCommand(
	orderID kernel.UUID,
	ownerID kernel.UUID,
	quantity *int,
	size *order.PizzaSize,
) (UpdatePendingOrderCommand, error) {
	cmd := UpdatePendingOrderCommand{
		quantity: quantity,
		size:     size,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return UpdatePendingOrderCommand{}, err
	}

	if quantity != nil && *quantity <= 0 {
		return UpdatePendingOrderCommand{}, ErrQuantityIsInvalid
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePendingOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePendingOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdatePendingOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the identifier of the acting user.
func (c UpdatePendingOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Quantity returns the requested quantity, or nil to keep the current one.
func (c UpdatePendingOrderCommand) Quantity() *int {
	return c.quantity
}

// Size returns the requested size, or nil to keep the current one.
func (c UpdatePendingOrderCommand) Size() *order.PizzaSize {
	return c.size
}

func (c *UpdatePendingOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdatePendingOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}
