package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, sub, env string, iat, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": sub, "env": env}
	if !iat.IsZero() {
		claims["iat"] = iat.Unix()
	}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestDecode_Fields(t *testing.T) {
	iat := time.Now().Add(-time.Minute).Truncate(time.Second)
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := mintToken(t, "42", "production", iat, exp)

	c, err := Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "42", c.Subject)
	assert.Equal(t, "production", c.Env)
	assert.True(t, c.IssuedAt.Equal(iat))
	assert.True(t, c.ExpiresAt.Equal(exp))
}

func TestDecode_IgnoresSignature(t *testing.T) {
	// Same payload signed with a different key still decodes: verification
	// is the server's job.
	tok := mintToken(t, "7", "dev", time.Time{}, time.Now().Add(time.Hour))
	c, err := Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "7", c.Subject)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode("not-a-jwt")
	assert.Error(t, err)
}

func TestClaims_Expired(t *testing.T) {
	now := time.Now()

	fresh, err := Decode(mintToken(t, "1", "", time.Time{}, now.Add(time.Hour)))
	require.NoError(t, err)
	assert.False(t, fresh.Expired(now))

	stale, err := Decode(mintToken(t, "1", "", time.Time{}, now.Add(-time.Hour)))
	require.NoError(t, err)
	assert.True(t, stale.Expired(now))

	// No exp claim at all counts as expired.
	noExp, err := Decode(mintToken(t, "1", "", time.Time{}, time.Time{}))
	require.NoError(t, err)
	assert.True(t, noExp.Expired(now))
}
