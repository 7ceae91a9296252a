package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-customer-portal/internal/validators"
	"github.com/MKhiriev/go-customer-portal/models"
)

// AccountValidationService rejects malformed input with ErrInvalidDataProvided
// before it reaches the wrapped AccountService.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

// NewAccountValidationService rejects new passwords longer than
// maxPasswordBytes. Zero disables the limit.
func NewAccountValidationService(maxPasswordBytes int) AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewCustomerValidator(maxPasswordBytes),
	}
}

func (v *AccountValidationService) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.LoginResult{}, invalid(err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AccountValidationService) Register(ctx context.Context, request models.RegisterRequest) (models.Customer, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Customer{}, invalid(err)
	}

	return v.inner.Register(ctx, request)
}

func (v *AccountValidationService) GetProfile(ctx context.Context, customerID string) (models.CustomerProfile, error) {
	if customerID == "" {
		return models.CustomerProfile{}, ErrInvalidDataProvided
	}

	return v.inner.GetProfile(ctx, customerID)
}

func (v *AccountValidationService) ListPackages(ctx context.Context, customerID string) ([]models.Package, error) {
	if customerID == "" {
		return nil, ErrInvalidDataProvided
	}

	return v.inner.ListPackages(ctx, customerID)
}

func (v *AccountValidationService) UpdatePassword(ctx context.Context, customerID string, change models.PasswordChange) error {
	if customerID == "" {
		return ErrInvalidDataProvided
	}
	if err := v.validator.Validate(ctx, change); err != nil {
		return invalid(err)
	}

	return v.inner.UpdatePassword(ctx, customerID, change)
}

func (v *AccountValidationService) UpdateProfile(ctx context.Context, customerID string, update models.ProfileUpdate) (models.CustomerProfile, error) {
	if customerID == "" {
		return models.CustomerProfile{}, ErrInvalidDataProvided
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.CustomerProfile{}, invalid(err)
	}

	return v.inner.UpdateProfile(ctx, customerID, update)
}

func (v *AccountValidationService) DeleteAccount(ctx context.Context, customerID string) error {
	if customerID == "" {
		return ErrInvalidDataProvided
	}

	return v.inner.DeleteAccount(ctx, customerID)
}

func (v *AccountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}

func invalid(err error) error {
	if errors.Is(err, validators.ErrPasswordTooLong) {
		return fmt.Errorf("%w: %w", ErrPasswordTooLong, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
