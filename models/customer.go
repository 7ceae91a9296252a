// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Customer is a registered portal account.
//
// PasswordHash holds the credential digest and is never serialised, so a
// Customer value can be returned to callers as-is.
type Customer struct {
	// ID is the opaque identifier assigned at registration. It is the
	// subject of every token issued for this customer.
	ID string `json:"id"`

	Name    string `json:"name"`
	Surname string `json:"surname"`

	// Code is a short generated reference in the form AAA999.
	// It is not guaranteed to be unique.
	Code string `json:"code"`

	// Email is unique across all customers.
	Email string `json:"email"`

	// Phone is optional; nil means no phone was provided.
	Phone *string `json:"phone,omitempty"`

	// PasswordHash is the bcrypt digest of the customer's password.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile returns the public view of the customer without its identifier.
func (c Customer) Profile() CustomerProfile {
	return CustomerProfile{
		Name:    c.Name,
		Surname: c.Surname,
		Code:    c.Code,
		Email:   c.Email,
		Phone:   c.Phone,
	}
}

// CustomerProfile is what a customer sees about their own account.
type CustomerProfile struct {
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
	Code    string  `json:"code"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
}

// ProfileUpdate describes a partial profile change.
// Only non-nil fields are applied.
type ProfileUpdate struct {
	Name    *string `json:"name,omitempty"`
	Surname *string `json:"surname,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// IsEmpty reports whether the update carries no changes at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Surname == nil && u.Email == nil && u.Phone == nil
}
