// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued for a customer.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] so it can be passed directly to
// [jwt.ParseWithClaims].
//
// CustomerID is a cached copy of the "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// CustomerID is the identifier extracted from the "sub" claim.
	CustomerID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
