package service

import (
	"fmt"

	"github.com/MKhiriev/go-customer-portal/internal/config"
	"github.com/MKhiriev/go-customer-portal/internal/crypto"
	"github.com/MKhiriev/go-customer-portal/internal/logger"
	"github.com/MKhiriev/go-customer-portal/internal/store"
)

type Services struct {
	AuthService    AuthService
	AccountService AccountService
	AppInfoService AppInfoService
}

// NewServices wires every service over storages. The account service is
// decorated with input validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(cfg.App, logger)
	passwordHasher := crypto.NewPasswordHasher(cfg.App.PasswordHashCost, cfg.App.PasswordHashKey)

	accountService := NewAccountValidationService(crypto.MaxPasswordBytes(cfg.App.PasswordHashKey)).Wrap(
		NewAccountService(storages, authService, passwordHasher, logger),
	)

	return &Services{
		AuthService:    authService,
		AccountService: accountService,
		AppInfoService: appInfoService,
	}, nil
}
