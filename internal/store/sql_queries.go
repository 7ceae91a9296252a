// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-customer-portal/models"
)

const (
	customersTable = "customers"
	packagesTable  = "packages"
)

// customerColumns is the column order every customer scan expects.
var customerColumns = []string{
	"id",
	"name",
	"surname",
	"code",
	"email",
	"phone",
	"password_hash",
	"created_at",
	"updated_at",
}

var packageColumns = []string{
	"p.id",
	"p.tracking",
	"p.weight",
	"p.description",
	"p.status_id",
	"p.customer_id",
	"s.id",
	"s.name",
}

// pendingPackagesExist matches any package of the customer that is not yet
// delivered. It takes the customer id and the terminal status id.
const pendingPackagesExist = "EXISTS (SELECT 1 FROM packages WHERE customer_id = ? AND status_id <> ?)"

func buildInsertCustomerQuery(b sq.StatementBuilderType, c models.Customer) (string, []any, error) {
	query, args, err := b.Insert(customersTable).
		Columns(customerColumns...).
		Values(c.ID, c.Name, c.Surname, c.Code, c.Email, c.Phone, c.PasswordHash, c.CreatedAt, c.UpdatedAt).
		Suffix(returningCustomer()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectCustomerQuery selects a single customer by an equality on
// column ("id" or "email").
func buildSelectCustomerQuery(b sq.StatementBuilderType, column string, value string) (string, []any, error) {
	query, args, err := b.Select(customerColumns...).
		From(customersTable).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdatePasswordQuery(b sq.StatementBuilderType, id, passwordHash string, now time.Time) (string, []any, error) {
	query, args, err := b.Update(customersTable).
		Set("password_hash", passwordHash).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateProfileQuery sets only the non-nil fields of update and
// returns the resulting row.
func buildUpdateProfileQuery(b sq.StatementBuilderType, id string, update models.ProfileUpdate, now time.Time) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	ub := b.Update(customersTable)
	if update.Name != nil {
		ub = ub.Set("name", *update.Name)
	}
	if update.Surname != nil {
		ub = ub.Set("surname", *update.Surname)
	}
	if update.Email != nil {
		ub = ub.Set("email", *update.Email)
	}
	if update.Phone != nil {
		ub = ub.Set("phone", *update.Phone)
	}

	query, args, err := ub.Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix(returningCustomer()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteCustomerQuery deletes the customer only while no pending
// package references it, so a package assigned after the service-level
// check still blocks the delete.
func buildDeleteCustomerQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Delete(customersTable).
		Where(sq.Eq{"id": id}).
		Where("NOT "+pendingPackagesExist, id, models.TerminalStatus).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectPackagesQuery(b sq.StatementBuilderType, customerID string) (string, []any, error) {
	query, args, err := b.Select(packageColumns...).
		From(packagesTable + " p").
		Join("statuses s ON s.id = p.status_id").
		Where(sq.Eq{"p.customer_id": customerID}).
		OrderBy("p.id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountPendingPackagesQuery(b sq.StatementBuilderType, customerID string) (string, []any, error) {
	query, args, err := b.Select("COUNT(*)").
		From(packagesTable).
		Where(sq.Eq{"customer_id": customerID}).
		Where(sq.NotEq{"status_id": models.TerminalStatus}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func returningCustomer() string {
	return "RETURNING " + strings.Join(customerColumns, ", ")
}
