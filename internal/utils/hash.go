// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds reusable HMAC-SHA256 instances keyed with the request
// integrity key. Must be initialized via InitHasherPool before Hash is used.
var hasherPool sync.Pool

// InitHasherPool (re)initializes the pool of HMAC-SHA256 hashers used by
// Hash. Every hasher in the pool is keyed with hashKey.
//
//	utils.InitHasherPool(cfg.App.HashKey)
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes the HMAC-SHA256 of data with a hasher taken from the pool.
// The request integrity middleware compares hex(Hash(body)) with the
// HashSHA256 header.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString returns hex(HMAC-SHA256(hashKey, data)).
//
// Unlike Hash it does not touch the pool, so it can be used with a key that
// differs from the integrity key. The password hasher uses it to pepper
// plaintexts before bcrypt; the 64-character result stays within bcrypt's
// 72 byte input limit.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
