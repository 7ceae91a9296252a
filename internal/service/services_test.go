package service

import (
	"testing"

	"github.com/MKhiriev/go-customer-portal/internal/config"
	"github.com/MKhiriev/go-customer-portal/internal/crypto"
	"github.com/MKhiriev/go-customer-portal/internal/logger"
	"github.com/MKhiriev/go-customer-portal/internal/store"
	"github.com/MKhiriev/go-customer-portal/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	cfg := config.StructuredConfig{App: testAppConfig()}

	services, err := NewServices(&store.Storages{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, services)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AppInfoService)
	assert.IsType(t, &AccountValidationService{}, services.AccountService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	cfg := config.StructuredConfig{App: testAppConfig()}
	cfg.App.Version = ""

	services, err := NewServices(&store.Storages{}, cfg, logger.Nop())

	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewServices_PasswordLimitFollowsPepper(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		limit int
	}{
		{name: "no pepper", key: "", limit: crypto.MaxPlaintextBytes},
		{name: "pepper", key: "pepper", limit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.StructuredConfig{App: testAppConfig()}
			cfg.App.PasswordHashKey = tt.key

			services, err := NewServices(&store.Storages{}, cfg, logger.Nop())
			require.NoError(t, err)

			wrapper := services.AccountService.(*AccountValidationService)
			validator := wrapper.validator.(*validators.CustomerValidator)
			assert.Equal(t, tt.limit, validator.MaxPasswordBytes())
		})
	}
}
