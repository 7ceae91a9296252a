package store

import "github.com/MKhiriev/go-customer-portal/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	CustomerRepository CustomerRepository
	PackageRepository  PackageRepository
}

// NewStorages builds every repository over the same connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		CustomerRepository: NewCustomerRepository(db, logger),
		PackageRepository:  NewPackageRepository(db, logger),
	}
}
