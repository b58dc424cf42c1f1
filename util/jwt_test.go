package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJWT(42, "user@example.com", secret)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateJWT(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "nutrivize", claims.Issuer)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "user@example.com", []byte("right-secret"))
	assert.NoError(t, err)

	_, err = ValidateJWT(token, []byte("wrong-secret"))
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", []byte("secret"))
	assert.Error(t, err)
}
