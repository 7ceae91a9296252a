// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomer_JSONNeverContainsPasswordHash(t *testing.T) {
	c := Customer{
		ID:           "0190-abc",
		Name:         "John",
		Surname:      "Doe",
		Code:         "ABC123",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$secretdigest",
	}

	b, err := json.Marshal(c)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "secretdigest")
	assert.NotContains(t, string(b), "password")
	assert.Contains(t, string(b), `"id":"0190-abc"`)
}

func TestCustomer_Profile(t *testing.T) {
	phone := "123456789"
	c := Customer{
		ID:           "id-1",
		Name:         "John",
		Surname:      "Doe",
		Code:         "WAS123",
		Email:        "john@example.com",
		Phone:        &phone,
		PasswordHash: "digest",
	}

	p := c.Profile()

	assert.Equal(t, CustomerProfile{
		Name:    "John",
		Surname: "Doe",
		Code:    "WAS123",
		Email:   "john@example.com",
		Phone:   &phone,
	}, p)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "id-1")
}

func TestProfileUpdate_IsEmpty(t *testing.T) {
	name := "Jane"

	assert.True(t, ProfileUpdate{}.IsEmpty())
	assert.False(t, ProfileUpdate{Name: &name}.IsEmpty())
}

func TestPackage_IsPending(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{name: "registered", status: StatusRegistered, want: true},
		{name: "in transit", status: StatusInTransit, want: true},
		{name: "out for delivery", status: StatusOutForDelivery, want: true},
		{name: "delivered", status: StatusDelivered, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Package{StatusID: tt.status}.IsPending())
		})
	}
}

func TestAppBuildInfo_Banner(t *testing.T) {
	full := NewAppBuildInfo("v1.0.0", "2026-01-02", "abc123")
	assert.Equal(t, "v1.0.0", full.BuildVersion())
	assert.Equal(t, "2026-01-02", full.BuildDate())
	assert.Equal(t, "abc123", full.BuildCommit())
	assert.Equal(t, "Build version: v1.0.0\nBuild date: 2026-01-02\nBuild commit: abc123\n", full.Banner())

	empty := NewAppBuildInfo("", "", "")
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", empty.Banner())
}
