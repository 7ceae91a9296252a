// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the email of credentials, registrations and profile updates.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of credentials and registrations.
	FieldPassword = "password"

	// FieldName targets the given name of a registration or profile update.
	FieldName = "name"

	// FieldSurname targets the family name of a registration or profile update.
	FieldSurname = "surname"

	// FieldBefore targets the current password of a password change.
	FieldBefore = "before"

	// FieldAfter targets the new password of a password change.
	FieldAfter = "after"

	// FieldAny requires a profile update to carry at least one change.
	FieldAny = "any"
)
