package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	tests := []struct {
		name   string
		pepper string
	}{
		{name: "without pepper"},
		{name: "with pepper", pepper: "pepper-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPasswordHasher(bcrypt.MinCost, tt.pepper)

			digest, err := h.Hash("s3cret")
			require.NoError(t, err)

			assert.NotEqual(t, "s3cret", digest)
			assert.True(t, h.Verify("s3cret", digest))
			assert.False(t, h.Verify("S3cret", digest))
			assert.False(t, h.Verify("", digest))
		})
	}
}

func TestPasswordHasher_SaltedDigests(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost, "")

	d1, err := h.Hash("same")
	require.NoError(t, err)
	d2, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
	assert.True(t, h.Verify("same", d1))
	assert.True(t, h.Verify("same", d2))
}

func TestPasswordHasher_PepperMustMatch(t *testing.T) {
	peppered := NewPasswordHasher(bcrypt.MinCost, "one")
	other := NewPasswordHasher(bcrypt.MinCost, "two")
	plain := NewPasswordHasher(bcrypt.MinCost, "")

	digest, err := peppered.Hash("s3cret")
	require.NoError(t, err)

	assert.False(t, other.Verify("s3cret", digest))
	assert.False(t, plain.Verify("s3cret", digest))
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost, "")

	assert.False(t, h.Verify("s3cret", ""))
	assert.False(t, h.Verify("s3cret", "not-a-bcrypt-digest"))
}

func TestPasswordHasher_LongPlaintext(t *testing.T) {
	long := strings.Repeat("x", 100)

	_, err := NewPasswordHasher(bcrypt.MinCost, "").Hash(long)
	require.Error(t, err)

	peppered := NewPasswordHasher(bcrypt.MinCost, "pepper")
	digest, err := peppered.Hash(long)
	require.NoError(t, err)
	assert.True(t, peppered.Verify(long, digest))
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	h := NewPasswordHasher(0, "").(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewPasswordHasher(bcrypt.MinCost, "").(*bcryptHasher)
	assert.Equal(t, bcrypt.MinCost, h.cost)
}

func TestMaxPasswordBytes(t *testing.T) {
	assert.Equal(t, MaxPlaintextBytes, MaxPasswordBytes(""))
	assert.Zero(t, MaxPasswordBytes("pepper"))

	limit := MaxPasswordBytes("")
	_, err := NewPasswordHasher(bcrypt.MinCost, "").Hash(strings.Repeat("x", limit))
	require.NoError(t, err)
	_, err = NewPasswordHasher(bcrypt.MinCost, "").Hash(strings.Repeat("x", limit+1))
	require.Error(t, err)
}
