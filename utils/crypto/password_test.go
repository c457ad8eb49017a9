package cryptopackage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPassword_Argon2(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	ok, err := VerifyPassword("s3cret-pass", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("other", hash)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, NeedsRehash(hash))
}

func TestVerifyPassword_LegacyBcrypt(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("imported-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, IsBcryptHash(string(legacy)))
	assert.True(t, NeedsRehash(string(legacy)))

	ok, err := VerifyPassword("imported-pass", string(legacy))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", string(legacy))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_Garbage(t *testing.T) {
	ok, err := VerifyPassword("x", "not-a-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}
