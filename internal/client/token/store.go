// Package token wraps the single bearer credential of a ContactKeeper
// session: durable storage (Store) and non-authoritative payload decoding
// (Decode).
//
// The store holds at most one credential. Reads and writes are guarded so
// that a reader never observes a half-written value. Decoding never checks
// the token signature; that is the server's job, and nothing in the client
// may base correctness on a client-side expiry judgment.
package token

import "errors"

// ErrNoCredential is returned by Load when no credential is stored.
var ErrNoCredential = errors.New("no stored credential")

// Store is the durable home of the bearer credential.
type Store interface {
	// Save replaces the stored credential.
	Save(token string) error
	// Load returns the stored credential, or ErrNoCredential.
	Load() (string, error)
	// Clear removes the credential. Clearing an empty store is a no-op.
	Clear() error
	// Present reports whether a credential is stored.
	Present() bool
}
