package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-customer-portal/internal/crypto"
	"github.com/MKhiriev/go-customer-portal/internal/logger"
	"github.com/MKhiriev/go-customer-portal/internal/store"
	"github.com/MKhiriev/go-customer-portal/internal/utils"
	"github.com/MKhiriev/go-customer-portal/models"
)

// generator produces identifiers. Satisfied by utils.UUIDGenerator and
// utils.CodeGenerator.
type generator interface {
	Generate() string
}

type accountService struct {
	customerRepository store.CustomerRepository
	packageRepository  store.PackageRepository

	authService    AuthService
	passwordHasher crypto.PasswordHasher

	idGenerator   generator
	codeGenerator generator

	logger *logger.Logger
}

// NewAccountService builds an AccountService over the given repositories.
// It does not validate its input; wrap it with AccountValidationService.
func NewAccountService(storages *store.Storages, authService AuthService, passwordHasher crypto.PasswordHasher, logger *logger.Logger) AccountService {
	return &accountService{
		customerRepository: storages.CustomerRepository,
		packageRepository:  storages.PackageRepository,
		authService:        authService,
		passwordHasher:     passwordHasher,
		idGenerator:        utils.NewUUIDGenerator(),
		codeGenerator:      utils.NewCodeGenerator(),
		logger:             logger,
	}
}

// Login authenticates a customer by email and password and issues a token.
//
// Returns:
//   - ErrCustomerNotFound if no customer has the email.
//   - ErrWrongPassword if the password does not match the stored digest.
//   - ErrTokenCreationFailed if the token cannot be signed.
func (s *accountService) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	customer, err := s.customerRepository.FindCustomerByEmail(ctx, credentials.Email)
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("customer search by email failed")
		return models.LoginResult{}, fromStoreError(err)
	}

	if !s.passwordHasher.Verify(credentials.Password, customer.PasswordHash) {
		log.Warn().Str("customer_id", customer.ID).Msg("wrong password")
		return models.LoginResult{}, ErrWrongPassword
	}

	token, err := s.authService.CreateToken(ctx, customer)
	if err != nil {
		return models.LoginResult{}, err
	}

	return models.LoginResult{Token: token, Profile: customer.Profile()}, nil
}

// Register creates a customer with a fresh id, a generated code and a
// hashed password. The returned customer never carries a usable digest
// outside the process since PasswordHash is not serialised.
//
// Returns ErrEmailAlreadyExists when the email is taken, either by the
// pre-check or by the storage unique constraint.
func (s *accountService) Register(ctx context.Context, request models.RegisterRequest) (models.Customer, error) {
	log := logger.FromContext(ctx)

	_, err := s.customerRepository.FindCustomerByEmail(ctx, request.Email)
	switch {
	case err == nil:
		log.Warn().Str("email", request.Email).Msg("email already registered")
		return models.Customer{}, ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrCustomerNotFound):
		log.Err(err).Str("email", request.Email).Msg("email pre-check failed")
		return models.Customer{}, fromStoreError(err)
	}

	digest, err := s.passwordHasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	customer, err := s.customerRepository.CreateCustomer(ctx, models.Customer{
		ID:           s.idGenerator.Generate(),
		Name:         request.Name,
		Surname:      request.Surname,
		Code:         s.codeGenerator.Generate(),
		Email:        request.Email,
		Phone:        request.Phone,
		PasswordHash: digest,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("customer creation ended with error")
		return models.Customer{}, fromStoreError(err)
	}

	log.Info().Str("customer_id", customer.ID).Msg("customer registered")
	return customer, nil
}

func (s *accountService) GetProfile(ctx context.Context, customerID string) (models.CustomerProfile, error) {
	customer, err := s.customerRepository.FindCustomerByID(ctx, customerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("customer_id", customerID).Msg("customer search by id failed")
		return models.CustomerProfile{}, fromStoreError(err)
	}

	return customer.Profile(), nil
}

// ListPackages returns the customer's packages. An empty slice is not an
// error; it means the customer has no packages.
func (s *accountService) ListPackages(ctx context.Context, customerID string) ([]models.Package, error) {
	packages, err := s.packageRepository.GetCustomerPackages(ctx, customerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("customer_id", customerID).Msg("listing packages failed")
		return nil, fromStoreError(err)
	}

	pending := 0
	for _, p := range packages {
		if p.IsPending() {
			pending++
		}
	}
	logger.FromContext(ctx).Debug().
		Str("customer_id", customerID).
		Int("total", len(packages)).
		Int("pending", pending).
		Msg("packages listed")

	return packages, nil
}

// UpdatePassword replaces the password after verifying the current one.
//
// Returns ErrCustomerNotFound for an unknown customer and ErrWrongPassword
// when change.Before does not match.
func (s *accountService) UpdatePassword(ctx context.Context, customerID string, change models.PasswordChange) error {
	log := logger.FromContext(ctx)

	customer, err := s.customerRepository.FindCustomerByID(ctx, customerID)
	if err != nil {
		log.Err(err).Str("customer_id", customerID).Msg("customer search by id failed")
		return fromStoreError(err)
	}

	if !s.passwordHasher.Verify(change.Before, customer.PasswordHash) {
		log.Warn().Str("customer_id", customerID).Msg("wrong current password")
		return ErrWrongPassword
	}

	digest, err := s.passwordHasher.Hash(change.After)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	if err = s.customerRepository.UpdatePassword(ctx, customerID, digest); err != nil {
		log.Err(err).Str("customer_id", customerID).Msg("password update failed")
		return fromStoreError(err)
	}

	return nil
}

// UpdateProfile applies a partial update. A new email that belongs to a
// different customer yields ErrEmailAlreadyExists.
func (s *accountService) UpdateProfile(ctx context.Context, customerID string, update models.ProfileUpdate) (models.CustomerProfile, error) {
	log := logger.FromContext(ctx)

	if update.Email != nil {
		owner, err := s.customerRepository.FindCustomerByEmail(ctx, *update.Email)
		switch {
		case err == nil && owner.ID != customerID:
			log.Warn().Str("customer_id", customerID).Msg("email is already in use")
			return models.CustomerProfile{}, ErrEmailAlreadyExists
		case err != nil && !errors.Is(err, store.ErrCustomerNotFound):
			log.Err(err).Str("customer_id", customerID).Msg("email pre-check failed")
			return models.CustomerProfile{}, fromStoreError(err)
		}
	}

	customer, err := s.customerRepository.UpdateProfile(ctx, customerID, update)
	if err != nil {
		log.Err(err).Str("customer_id", customerID).Msg("profile update failed")
		return models.CustomerProfile{}, fromStoreError(err)
	}

	return customer.Profile(), nil
}

// DeleteAccount removes the customer unless a package that is not yet
// delivered still references it.
//
// Returns ErrCustomerNotFound for an unknown customer and
// ErrPendingPackages when deletion is blocked.
func (s *accountService) DeleteAccount(ctx context.Context, customerID string) error {
	log := logger.FromContext(ctx)

	if _, err := s.customerRepository.FindCustomerByID(ctx, customerID); err != nil {
		log.Err(err).Str("customer_id", customerID).Msg("customer search by id failed")
		return fromStoreError(err)
	}

	pending, err := s.packageRepository.CountPendingPackages(ctx, customerID)
	if err != nil {
		log.Err(err).Str("customer_id", customerID).Msg("counting pending packages failed")
		return fromStoreError(err)
	}
	if pending > 0 {
		log.Info().Str("customer_id", customerID).Int("pending", pending).Msg("deletion blocked by pending packages")
		return ErrPendingPackages
	}

	if err = s.customerRepository.DeleteCustomer(ctx, customerID); err != nil {
		log.Err(err).Str("customer_id", customerID).Msg("customer deletion failed")
		return fromStoreError(err)
	}

	log.Info().Str("customer_id", customerID).Msg("customer deleted")
	return nil
}

// fromStoreError translates repository errors into service error kinds.
func fromStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrCustomerNotFound):
		return ErrCustomerNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailAlreadyExists
	case errors.Is(err, store.ErrCustomerHasPendingPackages):
		return ErrPendingPackages
	case errors.Is(err, store.ErrNothingToUpdate):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}
