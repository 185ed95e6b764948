package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// PlaceOrderCommand represents a request to place a new pizza order for the
// acting user. The status and the total amount are never taken from the
// client; they are forced server-side when the aggregate is created.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID  kernel.UUID
	quantity int
	size     order.PizzaSize

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates that the owner ID is valid and the quantity is positive.
// The size is already parsed at the boundary, where unrecognized values
// fall back to SMALL.
func NewPlaceOrderCommand(ownerID kernel.UUID, quantity int, size order.PizzaSize) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		size:  size,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setQuantity(quantity),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OwnerID returns the identifier of the ordering user.
func (c PlaceOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Quantity returns the number of pizzas requested.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

// Size returns the requested pizza size.
func (c PlaceOrderCommand) Size() order.PizzaSize {
	return c.size
}

func (c *PlaceOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
