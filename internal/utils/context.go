// Package utils provides general-purpose helpers shared by the customer
// portal packages: context keys, HMAC hashing, JSON response writing, the
// resty HTTP client, JWT generation and validation, and id and code
// generators.
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

// CustomerIDCtxKey is the key under which the auth middleware stores the
// authenticated customer's ID.
//
//	ctx := context.WithValue(ctx, utils.CustomerIDCtxKey, customer.ID)
var CustomerIDCtxKey = contextKey("customerID")

// GetCustomerIDFromContext returns the authenticated customer's ID.
// ok is false when the value is missing, empty or not a string.
func GetCustomerIDFromContext(ctx context.Context) (string, bool) {
	customerID, ok := ctx.Value(CustomerIDCtxKey).(string)
	if !ok || customerID == "" {
		return "", false
	}
	return customerID, true
}
