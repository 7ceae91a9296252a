package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-customer-portal/internal/logger"
	"github.com/MKhiriev/go-customer-portal/models"
)

// packageRepository reads the "packages" ledger joined with "statuses".
type packageRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPackageRepository constructs a [PackageRepository] over db.
func NewPackageRepository(db *DB, logger *logger.Logger) PackageRepository {
	logger.Debug().Msg("creating package repository")
	return &packageRepository{
		db:     db,
		logger: logger,
	}
}

// GetCustomerPackages returns all packages of customerID ordered by their
// ledger id. The result is never nil.
func (r *packageRepository) GetCustomerPackages(ctx context.Context, customerID string) ([]models.Package, error) {
	log := logger.FromContext(ctx).With().Str("customer_id", customerID).Logger()

	query, args, err := buildSelectPackagesQuery(r.db.builder(), customerID)
	if err != nil {
		log.Err(err).Str("func", "*packageRepository.GetCustomerPackages").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*packageRepository.GetCustomerPackages").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	packages := make([]models.Package, 0)
	for rows.Next() {
		var (
			p     models.Package
			owner sql.NullString
		)

		if err = rows.Scan(&p.ID, &p.Tracking, &p.Weight, &p.Description, &p.StatusID, &owner, &p.Status.ID, &p.Status.Name); err != nil {
			log.Err(err).Str("func", "*packageRepository.GetCustomerPackages").Msg("failed to scan package row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		p.CustomerID = owner.String

		packages = append(packages, p)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*packageRepository.GetCustomerPackages").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return packages, nil
}

// CountPendingPackages counts the customer's packages that are not in
// [models.TerminalStatus].
func (r *packageRepository) CountPendingPackages(ctx context.Context, customerID string) (int, error) {
	log := logger.FromContext(ctx).With().Str("customer_id", customerID).Logger()

	query, args, err := buildCountPendingPackagesQuery(r.db.builder(), customerID)
	if err != nil {
		log.Err(err).Str("func", "*packageRepository.CountPendingPackages").Msg("failed to build query")
		return 0, err
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*packageRepository.CountPendingPackages").Msg("failed to count pending packages")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
