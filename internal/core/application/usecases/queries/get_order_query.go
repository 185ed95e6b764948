package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order on behalf of a requester.
// Administrators may fetch any order; ordinary users only their own, with
// other users' orders presented as not-found so existence is not leaked.
type GetOrderQuery struct {
	orderID          kernel.UUID
	requesterID      kernel.UUID
	requesterIsStaff bool

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order as seen by the requester.
func NewGetOrderQuery(orderID, requesterID kernel.UUID, requesterIsStaff bool) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), requesterID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:          orderID,
		requesterID:      requesterID,
		requesterIsStaff: requesterIsStaff,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequesterID returns the identifier of the acting user.
func (q GetOrderQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// RequesterIsStaff reports whether the acting user is an administrator.
func (q GetOrderQuery) RequesterIsStaff() bool {
	return q.requesterIsStaff
}
