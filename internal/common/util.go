package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString returns a hex-encoded string of size random bytes
// (so the resulting string is 2*size characters long).
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray zeroes the buffer in place. Safe to call with nil.
// Used to scrub passwords read from the terminal once they are no
// longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
