// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed client for the customer portal HTTP API.
//
// [PortalAdapter] hides the transport: callers work with models and get
// sentinel errors back. Non-2xx responses are mapped by mapHTTPError, so
// callers can match them with [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401). The message from the JSON error body is kept
// in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-customer-portal/models"
)

// PortalAdapter talks to the /customer API on behalf of one customer.
// Login stores the bearer token; every protected call sends it.
type PortalAdapter interface {
	// SetToken stores the bearer token attached to protected requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before Login.
	Token() string

	// Login calls POST /customer/login and stores the returned token.
	Login(ctx context.Context, credentials models.Credentials) (models.CustomerProfile, error)

	// Register calls POST /customer/register. It does not log in.
	Register(ctx context.Context, request models.RegisterRequest) (models.Customer, error)

	// GetProfile calls GET /customer/getInfo.
	GetProfile(ctx context.Context) (models.CustomerProfile, error)

	// ListPackages calls GET /customer/getPackages. The "no packages"
	// answer (202) is returned as an empty slice.
	ListPackages(ctx context.Context) ([]models.Package, error)

	// UpdatePassword calls PUT /customer/updatePassword.
	UpdatePassword(ctx context.Context, change models.PasswordChange) error

	// UpdateProfile calls PUT /customer/updateProfile and returns the
	// updated profile.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.CustomerProfile, error)

	// DeleteAccount calls DELETE /customer/deleteProfile. The stored token
	// is cleared on success.
	DeleteAccount(ctx context.Context) error

	// ServerVersion calls GET /api/version.
	ServerVersion(ctx context.Context) (string, error)
}
