// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks customer input before it reaches the account
// service: required fields, email syntax and non-empty partial updates.
//
// Validation failures are returned as the sentinels in errors.go. The
// service layer wraps them into its own validation error kind.
package validators

import "context"

// Validator checks a request value. Passing field names restricts the check
// to those fields; with none, every field the value type knows is checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
