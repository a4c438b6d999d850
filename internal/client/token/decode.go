package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a bearer credential: subject id,
// issue/expiry timestamps and the environment tag the token was minted for.
//
// The values are a hint only. The signature is NOT verified here — the
// server is the sole authority on token validity, and the pipeline reacts to
// its 401 responses, never to a client-side expiry judgment.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Env       string
}

type rawClaims struct {
	jwt.RegisteredClaims
	Env string `json:"env"`
}

// Decode parses the token payload without verifying the signature.
// Decoding is pure: it never touches the store.
func Decode(tok string) (*Claims, error) {
	var raw rawClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &raw); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	c := &Claims{Subject: raw.Subject, Env: raw.Env}
	if raw.IssuedAt != nil {
		c.IssuedAt = raw.IssuedAt.Time
	}
	if raw.ExpiresAt != nil {
		c.ExpiresAt = raw.ExpiresAt.Time
	}
	return c, nil
}

// Expired reports whether the decoded expiry lies before now. Tokens without
// an exp claim are treated as expired.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return true
	}
	return c.ExpiresAt.Before(now)
}
