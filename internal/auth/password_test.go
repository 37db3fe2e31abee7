package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("miguel")
	require.NoError(t, err)

	// The stored credential is a bcrypt hash, not the plaintext
	assert.NotEqual(t, "miguel", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("miguel")
	require.NoError(t, err)
	second, err := HashPassword("miguel")
	require.NoError(t, err)

	// Each derivation uses a fresh salt
	assert.NotEqual(t, first, second)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("miguel")
	require.NoError(t, err)

	assert.True(t, CheckPassword("miguel", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("", hash))
	assert.False(t, CheckPassword("miguel", "not-a-hash"))
}
