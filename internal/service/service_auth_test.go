package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-customer-portal/internal/config"
	"github.com/MKhiriev/go-customer-portal/internal/logger"
	"github.com/MKhiriev/go-customer-portal/internal/utils"
	"github.com/MKhiriev/go-customer-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "customer-portal-test",
		TokenDuration: time.Hour,
		Version:       "1.0.0",
	}
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := NewAuthService(testAppConfig(), logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Customer{ID: "customer-1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, "customer-1", token.CustomerID)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "customer-1", parsed.CustomerID)
	assert.Equal(t, "customer-portal-test", parsed.Issuer)
}

func TestAuthService_CreateToken_EmptyCustomerID(t *testing.T) {
	svc := NewAuthService(testAppConfig(), logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.Customer{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	cfg := testAppConfig()
	svc := NewAuthService(cfg, logger.Nop())

	otherKey, err := utils.GenerateJWTToken(cfg.TokenIssuer, "customer-1", time.Hour, "another-key")
	require.NoError(t, err)

	otherIssuer, err := utils.GenerateJWTToken("someone-else", "customer-1", time.Hour, cfg.TokenSignKey)
	require.NoError(t, err)

	expired, err := utils.GenerateJWTToken(cfg.TokenIssuer, "customer-1", -time.Minute, cfg.TokenSignKey)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.jwt"},
		{name: "wrong signing key", token: otherKey.SignedString},
		{name: "wrong issuer", token: otherIssuer.SignedString},
		{name: "expired", token: expired.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tt.token)

			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}
