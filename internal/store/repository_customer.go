package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-customer-portal/internal/logger"
	"github.com/MKhiriev/go-customer-portal/models"
)

// customerRepository is the SQL implementation of [CustomerRepository]
// backed by the "customers" table. It works on both supported dialects.
//
// Methods log through the context-scoped logger from [logger.FromContext].
// Password digests are never logged.
type customerRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewCustomerRepository constructs a [CustomerRepository] over db.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (models.Customer, error) {
	var (
		c     models.Customer
		phone sql.NullString
	)

	err := row.Scan(&c.ID, &c.Name, &c.Surname, &c.Code, &c.Email, &phone, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return models.Customer{}, err
	}

	if phone.Valid {
		c.Phone = &phone.String
	}
	return c, nil
}

// CreateCustomer inserts customer. CreatedAt and UpdatedAt are filled in
// when zero.
//
// Error handling:
//   - unique violation → [ErrEmailAlreadyExists]
//   - any other failure → wrapped [ErrExecutingStatement]
func (r *customerRepository) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = r.now()
	}
	if customer.UpdatedAt.IsZero() {
		customer.UpdatedAt = customer.CreatedAt
	}

	query, args, err := buildInsertCustomerQuery(r.db.builder(), customer)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("failed to build query")
		return models.Customer{}, err
	}

	created, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Debug().Str("func", "*customerRepository.CreateCustomer").Msg("email already exists")
			return models.Customer{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("failed to insert customer")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *customerRepository) FindCustomerByID(ctx context.Context, id string) (models.Customer, error) {
	return r.findCustomer(ctx, "id", id)
}

func (r *customerRepository) FindCustomerByEmail(ctx context.Context, email string) (models.Customer, error) {
	return r.findCustomer(ctx, "email", email)
}

func (r *customerRepository) findCustomer(ctx context.Context, column, value string) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCustomerQuery(r.db.builder(), column, value)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.findCustomer").Msg("failed to build query")
		return models.Customer{}, err
	}

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrCustomerNotFound
		}

		log.Err(err).Str("func", "*customerRepository.findCustomer").Str("by", column).Msg("failed to find customer")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return customer, nil
}

// UpdatePassword replaces the digest of customer id.
// Returns [ErrCustomerNotFound] when no row was touched.
func (r *customerRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	log := logger.FromContext(ctx).With().Str("customer_id", id).Logger()

	query, args, err := buildUpdatePasswordQuery(r.db.builder(), id, passwordHash, r.now())
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.UpdatePassword").Msg("failed to build query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.UpdatePassword").Msg("failed to update password")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// UpdateProfile applies the non-nil fields of update in one
// UPDATE ... RETURNING statement. An empty update returns the current row.
//
// Error handling:
//   - no row → [ErrCustomerNotFound]
//   - unique violation on email → [ErrEmailAlreadyExists]
func (r *customerRepository) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Customer, error) {
	log := logger.FromContext(ctx).With().Str("customer_id", id).Logger()

	if update.IsEmpty() {
		return r.FindCustomerByID(ctx, id)
	}

	query, args, err := buildUpdateProfileQuery(r.db.builder(), id, update, r.now())
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.UpdateProfile").Msg("failed to build query")
		return models.Customer{}, err
	}

	updated, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Customer{}, ErrCustomerNotFound
		case r.db.classify(err) == UniqueViolation:
			return models.Customer{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*customerRepository.UpdateProfile").Msg("failed to update profile")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteCustomer runs the guarded delete. When nothing was deleted it
// tells an absent customer ([ErrCustomerNotFound]) from a blocked one
// ([ErrCustomerHasPendingPackages]).
func (r *customerRepository) DeleteCustomer(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).With().Str("customer_id", id).Logger()

	query, args, err := buildDeleteCustomerQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteCustomer").Msg("failed to build query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteCustomer").Msg("failed to delete customer")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	if _, err = r.FindCustomerByID(ctx, id); err != nil {
		return err
	}

	log.Debug().Str("func", "*customerRepository.DeleteCustomer").Msg("delete blocked by pending packages")
	return ErrCustomerHasPendingPackages
}
