package store

import (
	"context"

	"github.com/MKhiriev/go-customer-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CustomerRepository is the customer directory.
type CustomerRepository interface {
	// CreateCustomer inserts customer and returns the stored row.
	// Returns ErrEmailAlreadyExists when the email is taken.
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)

	// FindCustomerByID returns ErrCustomerNotFound when no row matches.
	FindCustomerByID(ctx context.Context, id string) (models.Customer, error)

	// FindCustomerByEmail returns ErrCustomerNotFound when no row matches.
	FindCustomerByEmail(ctx context.Context, email string) (models.Customer, error)

	// UpdatePassword replaces the stored digest.
	UpdatePassword(ctx context.Context, id string, passwordHash string) error

	// UpdateProfile applies the non-nil fields of update and returns the
	// updated row.
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Customer, error)

	// DeleteCustomer removes the customer unless a pending package still
	// references it, in which case ErrCustomerHasPendingPackages is returned.
	DeleteCustomer(ctx context.Context, id string) error
}

// PackageRepository is the read-only package ledger.
type PackageRepository interface {
	// GetCustomerPackages returns the customer's packages with their status
	// joined. An empty slice means the customer has none.
	GetCustomerPackages(ctx context.Context, customerID string) ([]models.Package, error)

	// CountPendingPackages counts packages not in the terminal status.
	CountPendingPackages(ctx context.Context, customerID string) (int, error)
}

// ErrorClassificator maps driver errors onto dialect-independent classes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
