// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of a registration request.
type RegisterRequest struct {
	Name     string  `json:"name"`
	Surname  string  `json:"surname"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
}

// PasswordChange is the body of a password update request.
// Before is the current password, After the new one.
type PasswordChange struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// LoginResult is produced by a successful login.
type LoginResult struct {
	Token   Token
	Profile CustomerProfile
}
