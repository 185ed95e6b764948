// Package user provides the domain model for account identities.
// A user owns orders and may carry the staff flag granting administrator
// capability over all orders. Passwords are represented only by their hash.
package user
