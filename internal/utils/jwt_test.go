package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT(42, "admin@mis.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin@mis.com", claims.Email)
}

func TestValidateJWT_Garbage(t *testing.T) {
	InitJWT("test-secret")

	_, err := ValidateJWT("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	InitJWT("secret-one")
	token, err := GenerateJWT(1, "a@b.com")
	require.NoError(t, err)

	InitJWT("secret-two")
	_, err = ValidateJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateJWT_NoSecret(t *testing.T) {
	InitJWT("")
	_, err := GenerateJWT(1, "a@b.com")
	assert.Error(t, err)
}
