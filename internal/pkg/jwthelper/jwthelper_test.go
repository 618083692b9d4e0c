package jwthelper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, expiresAt, err := GenerateToken("secret", "admin@zunde.com", "admin", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "admin@zunde.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, _, err := GenerateToken("secret", "admin@zunde.com", "admin", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	token, _, err := GenerateToken("secret", "admin@zunde.com", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
