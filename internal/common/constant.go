// Package common contains shared constants, sentinel errors and small
// helpers used across ContactKeeper components.
package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer
// credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the scheme prefix of the Authorization header value.
const BearerPrefix = "Bearer "

// TokenTypeBearer is the token_type value returned by the auth endpoints.
const TokenTypeBearer = "bearer"
