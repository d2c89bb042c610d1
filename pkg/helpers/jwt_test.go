package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, exp, err := m.GenerateToken("abc123", "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc123", claims.UserID)
	assert.Equal(t, "u1", claims.Username)
}

func TestJWTWrongSecret(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	token, _, err := m.GenerateToken("abc123", "u1")
	require.NoError(t, err)

	other := NewJWTManager("not-the-secret", time.Hour)
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestJWTExpiry(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)
	token, _, err := m.GenerateToken("abc123", "u1")
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.Error(t, err, "an expired token must not verify")
}

func TestDefaultJWT(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	assert.Same(t, m, DefaultJWT())
}
