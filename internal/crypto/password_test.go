package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Format(t *testing.T) {
	h, err := HashPassword("secret")
	require.NoError(t, err)

	salt, hash, ok := strings.Cut(h, ":")
	require.True(t, ok)

	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, rawSalt, saltLen)

	rawHash, err := base64.StdEncoding.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, rawHash, int(argonKeyLen))
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	h1, err := HashPassword("secret")
	require.NoError(t, err)
	h2, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerifyPassword(t *testing.T) {
	h, err := HashPassword("secret")
	require.NoError(t, err)

	ok, err := VerifyPassword("secret", h)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("Secret", h)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_UnpaddedHash(t *testing.T) {
	h, err := HashPassword("secret")
	require.NoError(t, err)

	unpadded := strings.ReplaceAll(h, "=", "")

	ok, err := VerifyPassword("secret", unpadded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPassword_Malformed(t *testing.T) {
	cases := []string{
		"",
		"no-colon",
		"!!!:AAAA",
		"AAAA:!!!",
		":AAAA",
	}

	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			ok, err := VerifyPassword("secret", c)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrMalformedHash)
			assert.ErrorIs(t, ValidateHash(c), ErrMalformedHash)
		})
	}
}
