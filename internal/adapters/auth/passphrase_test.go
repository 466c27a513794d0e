package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPlainVerifier(t *testing.T) {
	v := NewPlainVerifier("jantar2025")

	assert.True(t, v.Verify("jantar2025"))
	assert.False(t, v.Verify("Jantar2025"))
	assert.False(t, v.Verify("jantar2025 "))
	assert.False(t, v.Verify(""))
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("jantar2025"), bcrypt.MinCost)
	require.NoError(t, err)

	v, err := NewBcryptVerifier(string(hash))
	require.NoError(t, err)

	assert.True(t, v.Verify("jantar2025"))
	assert.False(t, v.Verify("wrong"))
}

func TestNewBcryptVerifier_invalid_hash(t *testing.T) {
	_, err := NewBcryptVerifier("not-a-hash")
	assert.Error(t, err)
}

func TestNewVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("from-hash"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("plain wins", func(t *testing.T) {
		v, err := NewVerifier("from-plain", string(hash))
		require.NoError(t, err)
		assert.True(t, v.Verify("from-plain"))
		assert.False(t, v.Verify("from-hash"))
	})

	t.Run("bcrypt only", func(t *testing.T) {
		v, err := NewVerifier("", string(hash))
		require.NoError(t, err)
		assert.True(t, v.Verify("from-hash"))
	})

	t.Run("nothing configured", func(t *testing.T) {
		v, err := NewVerifier("", "")
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}
