// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the customer portal.
//
// Services sit between the HTTP boundary and the store: they validate
// input, hash and verify credentials, issue tokens and translate storage
// failures into the error kinds declared in errors.go.
package service

import (
	"context"

	"github.com/MKhiriev/go-customer-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and verifies session tokens.
type AuthService interface {
	// CreateToken signs a token whose subject is customer.ID.
	CreateToken(ctx context.Context, customer models.Customer) (models.Token, error)

	// ParseToken verifies a raw token. Any failure is reported as
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccountService implements the customer-facing account operations.
type AccountService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error)
	Register(ctx context.Context, request models.RegisterRequest) (models.Customer, error)

	GetProfile(ctx context.Context, customerID string) (models.CustomerProfile, error)
	ListPackages(ctx context.Context, customerID string) ([]models.Package, error)

	UpdatePassword(ctx context.Context, customerID string, change models.PasswordChange) error
	UpdateProfile(ctx context.Context, customerID string, update models.ProfileUpdate) (models.CustomerProfile, error)
	DeleteAccount(ctx context.Context, customerID string) error
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// validation.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}

// AppInfoService exposes build information of the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
