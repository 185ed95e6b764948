package order

import "strings"

// PizzaSize represents the size of the pizzas in an order.
// Each size carries a fixed unit price used to derive the order total.
type PizzaSize int

const (
	// UnknownSize is the zero value. It is never produced by ParsePizzaSize
	// and behaves as Small wherever it appears (pricing, serialization).
	UnknownSize PizzaSize = iota

	Small
	Medium
	Large
	ExtraLarge
)

// Unit prices per pizza size.
const (
	smallPrice      = 10.99
	mediumPrice     = 14.99
	largePrice      = 18.99
	extraLargePrice = 22.99
)

// ParsePizzaSize maps a size name onto a PizzaSize. Matching is
// case-insensitive. Unrecognized values fall back to Small rather than
// failing; the fallback is applied here at the parse boundary so the rest
// of the domain only ever sees a usable size.
func ParsePizzaSize(s string) PizzaSize {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MEDIUM":
		return Medium
	case "LARGE":
		return Large
	case "EXTRA-LARGE":
		return ExtraLarge
	default:
		return Small
	}
}

// UnitPrice returns the price of a single pizza of this size.
// Sizes outside the recognized set are priced as Small, mirroring the
// ParsePizzaSize fallback.
func (s PizzaSize) UnitPrice() float64 {
	switch s {
	case Medium:
		return mediumPrice
	case Large:
		return largePrice
	case ExtraLarge:
		return extraLargePrice
	default:
		return smallPrice
	}
}

// String returns the wire name of the size ("SMALL", "MEDIUM", "LARGE",
// "EXTRA-LARGE"). Unrecognized sizes render as "SMALL", consistent with
// the pricing fallback.
func (s PizzaSize) String() string {
	switch s {
	case Medium:
		return "MEDIUM"
	case Large:
		return "LARGE"
	case ExtraLarge:
		return "EXTRA-LARGE"
	default:
		return "SMALL"
	}
}
