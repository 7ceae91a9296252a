package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns customer passwords into storable digests and checks
// plaintexts against them. It knows nothing about customers or storage.
type PasswordHasher interface {
	// Hash returns a salted digest of plaintext. Two calls with the same
	// plaintext yield different digests. It fails only on input the
	// underlying algorithm rejects (e.g. a plaintext over 72 bytes when no
	// pepper is configured).
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext produces digest. The comparison is
	// constant time. A malformed digest never verifies.
	Verify(plaintext, digest string) bool
}
