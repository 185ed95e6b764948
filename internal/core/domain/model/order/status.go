package order

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// Status represents the delivery state of an order.
//
// Recognized statuses: PENDING, IN-TRANSIT, DELIVERED. An administrator may
// set any recognized status regardless of the current one; there is no
// forced ordering between states. Every order starts as Pending.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status assigned to every placed order.
	// Only pending orders may be edited by their owner.
	Pending

	// InTransit indicates the order has left the kitchen.
	InTransit

	// Delivered indicates the order reached the customer.
	Delivered
)

// statusNames lists the recognized statuses in wire order. Used both for
// parsing and for enumerating valid choices in error messages.
var statusNames = []string{"PENDING", "IN-TRANSIT", "DELIVERED"}

// ValidStatusNames returns the recognized status names joined for display,
// e.g. in validation error details.
func ValidStatusNames() string {
	return strings.Join(statusNames, ", ")
}

// ParseStatus maps a status name onto a Status. Input is upper-cased before
// comparison, so "in-transit" parses to InTransit. Unrecognized values
// return an error enumerating the valid choices.
func ParseStatus(s string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PENDING":
		return Pending, nil
	case "IN-TRANSIT":
		return InTransit, nil
	case "DELIVERED":
		return Delivered, nil
	default:
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("order_status",
			fmt.Errorf("invalid order status %q, must be one of: %s", s, ValidStatusNames()))
	}
}

// Validate checks that the Status value is one of the recognized statuses.
// UnknownStatus and any other values are invalid.
func (s Status) Validate() error {
	switch s {
	case Pending, InTransit, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("order_status",
			fmt.Errorf("%d is not a valid status", s))
	}
}

// String returns the wire name of the status.
// Invalid values render as "UNKNOWN".
func (s Status) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case InTransit:
		return "IN-TRANSIT"
	case Delivered:
		return "DELIVERED"
	default:
		return "UNKNOWN"
	}
}
