// Package services contains core services that coordinate across the
// domain model and the opaque capabilities.
//
// AccessPolicy is the single authority for authorization decisions: it
// authenticates login credentials and resolves bearer tokens into acting
// users, distinguishing ordinary-user from administrator capability.
package services
