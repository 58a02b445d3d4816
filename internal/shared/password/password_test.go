package password

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_Format(t *testing.T) {
	hasher := NewHasher()

	stored, err := hasher.Hash("Abc12345!")
	require.NoError(t, err)

	salt, hash, ok := strings.Cut(stored, ":")
	require.True(t, ok, "stored value should be salt:hash")

	// 16 random bytes hex-encoded, 64-byte key hex-encoded
	assert.Len(t, salt, 32)
	assert.Len(t, hash, 128)

	_, err = hex.DecodeString(salt)
	assert.NoError(t, err, "salt should be hex")
	_, err = hex.DecodeString(hash)
	assert.NoError(t, err, "hash should be hex")

	assert.NotContains(t, stored, "Abc12345!", "plaintext must never appear in the stored value")
}

func TestHash_NonDeterministic(t *testing.T) {
	hasher := NewHasher()

	first, err := hasher.Hash("Abc12345!")
	require.NoError(t, err)
	second, err := hasher.Hash("Abc12345!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "a fresh salt should make each hash unique")
}

func TestVerify(t *testing.T) {
	hasher := NewHasher()

	stored, err := hasher.Hash("Abc12345!")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		assert.True(t, hasher.Verify("Abc12345!", stored))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.False(t, hasher.Verify("Abc12345?", stored))
	})

	t.Run("empty password", func(t *testing.T) {
		assert.False(t, hasher.Verify("", stored))
	})

	t.Run("malformed stored value", func(t *testing.T) {
		assert.False(t, hasher.Verify("Abc12345!", "no-separator"))
		assert.False(t, hasher.Verify("Abc12345!", ":"))
		assert.False(t, hasher.Verify("Abc12345!", ""))
	})
}
