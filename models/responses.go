// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic body used for errors and for operations
// that return nothing but a confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by POST /customer/login.
type LoginResponse struct {
	Message  string          `json:"message"`
	Token    string          `json:"token"`
	Customer CustomerProfile `json:"customer"`
}

// RegisterResponse is returned by POST /customer/register.
type RegisterResponse struct {
	Message  string   `json:"message"`
	Customer Customer `json:"customer"`
}

// UpdateProfileResponse is returned by PUT /customer/updateProfile.
type UpdateProfileResponse struct {
	Message  string          `json:"message"`
	Customer CustomerProfile `json:"customer"`
}
