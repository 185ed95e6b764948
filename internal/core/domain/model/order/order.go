package order

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderNotPending is returned when an owner tries to edit an order
	// that has already left the Pending status.
	ErrOrderNotPending = errors.New("only pending orders can be updated")

	// ErrNotOrderOwner is returned when a user attempts an owner-only
	// mutation on an order that belongs to someone else.
	ErrNotOrderOwner = errors.New("you can only delete your own orders")
)

// Order is the aggregate root for a pizza order.
//
// Invariants:
//   - id and userID are valid UUIDs
//   - quantity is a positive integer
//   - status is one of the recognized statuses; new orders always start Pending
//   - totalAmount equals UnitPrice(size) * quantity rounded to 2 decimals
//     (round-half-away-from-zero) and is never set from client input
//
// Fields are private; all mutation goes through validated methods.
type Order struct {
	id          kernel.UUID
	userID      kernel.UUID
	quantity    int
	size        PizzaSize
	status      Status
	totalAmount float64
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewOrder creates a freshly placed order for the given owner.
// The status is forced to Pending and the total is derived from the size
// and quantity; any client-supplied status or total is ignored upstream.
func NewOrder(id kernel.UUID, userID kernel.UUID, quantity int, size PizzaSize) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		size:          size,
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	order.recalculateTotal()
	return order, nil
}

// RestoreOrder reconstructs an order from persistence. The stored status and
// total are kept as-is; basic invariants are still validated so corrupted
// rows do not leak into the domain.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	quantity int,
	size PizzaSize,
	status Status,
	totalAmount float64,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		size:          size,
		totalAmount:   totalAmount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setQuantity(quantity),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the order's owner.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Quantity returns the number of pizzas in the order.
func (o *Order) Quantity() int {
	return o.quantity
}

// Size returns the pizza size of the order.
func (o *Order) Size() PizzaSize {
	return o.size
}

// Status returns the current delivery status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the derived order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-update timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether the order belongs to the given user.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// UpdateDetails changes the quantity and size of a pending order and
// recomputes the total. Returns ErrOrderNotPending once the order has left
// the Pending status; only the owner may reach this method (enforced by
// the caller's lookup).
func (o *Order) UpdateDetails(quantity int, size PizzaSize) error {
	if o.status != Pending {
		return ErrOrderNotPending
	}

	if err := o.setQuantity(quantity); err != nil {
		return err
	}

	o.size = size
	o.recalculateTotal()
	o.touch()
	return nil
}

// SetStatus overwrites the delivery status. Any recognized status may be
// set regardless of the current one; quantity and total are untouched.
func (o *Order) SetStatus(status Status) error {
	if err := o.setStatus(status); err != nil {
		return err
	}

	o.touch()
	return nil
}

// recalculateTotal derives the total from the unit price and quantity.
func (o *Order) recalculateTotal() {
	o.totalAmount = kernel.RoundMoney(o.size.UnitPrice() * float64(o.quantity))
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user_id", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
