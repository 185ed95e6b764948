// Package kernel contains shared value objects used across the domain model.
//
// It provides:
//   - UUID: an immutable identifier wrapping github.com/google/uuid with
//     constructor validation
//   - RoundMoney: the single rounding function for derived monetary amounts
//
// Domain aggregates build on these primitives instead of using library types
// directly, keeping validation rules in one place.
package kernel
