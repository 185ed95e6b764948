package bcrypthash_test

import (
	"testing"

	"pizzeria/internal/adapters/out/bcrypthash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_Hash(t *testing.T) {
	hasher := bcrypthash.NewHasher()

	t.Run("should produce a bcrypt hash", func(t *testing.T) {
		hash, err := hasher.Hash("secret")

		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "secret", hash)
		assert.Contains(t, hash, "$2a$")
	})

	t.Run("should produce different hashes for the same password", func(t *testing.T) {
		hash1, err := hasher.Hash("secret")
		require.NoError(t, err)
		hash2, err := hasher.Hash("secret")
		require.NoError(t, err)

		assert.NotEqual(t, hash1, hash2)
	})
}

func TestHasher_Verify(t *testing.T) {
	hasher := bcrypthash.NewHasher()

	t.Run("should verify matching password", func(t *testing.T) {
		hash, err := hasher.Hash("secret")
		require.NoError(t, err)

		assert.True(t, hasher.Verify("secret", hash))
	})

	t.Run("should reject wrong password", func(t *testing.T) {
		hash, err := hasher.Hash("secret")
		require.NoError(t, err)

		assert.False(t, hasher.Verify("wrong", hash))
	})

	t.Run("should reject garbage hash", func(t *testing.T) {
		assert.False(t, hasher.Verify("secret", "not-a-hash"))
	})
}
