// Package order provides the domain model for pizza orders.
//
// The package includes:
//   - Order: the aggregate root holding owner, quantity, size, status, and
//     the derived total amount
//   - Status: the recognized delivery statuses (PENDING, IN-TRANSIT, DELIVERED)
//   - PizzaSize: the recognized sizes with their fixed unit prices
//
// Key business rules:
//   - Placed orders always start in PENDING status with a server-computed total
//   - Owners may change quantity and size only while the order is PENDING
//   - Administrators may overwrite the status with any recognized value
//   - Unrecognized size values fall back to SMALL at the parse boundary
//   - The total is always unit price times quantity, rounded to 2 decimals
package order
