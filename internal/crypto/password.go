// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-customer-portal/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// MaxPlaintextBytes is the longest input bcrypt accepts.
const MaxPlaintextBytes = 72

// MaxPasswordBytes reports the password length limit for a hasher built with
// pepper. Zero means unlimited: a peppered plaintext is reduced to a
// fixed-size HMAC before bcrypt sees it.
func MaxPasswordBytes(pepper string) int {
	if pepper != "" {
		return 0
	}
	return MaxPlaintextBytes
}

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int

	// pepper, when non-empty, keys an HMAC-SHA256 applied to the plaintext
	// before bcrypt. Changing it invalidates every stored digest.
	pepper string
}

// NewPasswordHasher returns a bcrypt [PasswordHasher]. A cost outside
// [bcrypt.MinCost, bcrypt.MaxCost] falls back to [bcrypt.DefaultCost].
func NewPasswordHasher(cost int, pepper string) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost, pepper: pepper}
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(h.prepare(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

func (h *bcryptHasher) Verify(plaintext, digest string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(digest), h.prepare(plaintext))
	return err == nil
}

func (h *bcryptHasher) prepare(plaintext string) []byte {
	if h.pepper == "" {
		return []byte(plaintext)
	}

	return []byte(utils.HashString(plaintext, h.pepper))
}
