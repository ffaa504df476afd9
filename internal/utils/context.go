// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ServiceProviderIDCtxKey is the key used to store the authenticated service
// provider identifier in the context. The auth middleware writes it after
// validating the bearer token.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ServiceProviderIDCtxKey, "sp-42")
var ServiceProviderIDCtxKey = contextKey("serviceProviderID")

// GetServiceProviderIDFromContext retrieves the service provider identifier
// from the context.
//
// Returns the identifier and an ok flag:
//   - ok == true:  value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetServiceProviderIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ServiceProviderIDCtxKey).(string)
	return id, ok && id != ""
}
