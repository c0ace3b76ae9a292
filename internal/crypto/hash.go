package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of the password.
// The digest is deterministic and unsalted: stored hashes predate this
// service and must keep verifying, so the scheme cannot be upgraded to a
// salted KDF without a credential migration. This leaves stored hashes
// exposed to precomputed-table attacks; known limitation.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword checks whether a password matches the stored digest by
// recomputing the digest and comparing in constant time.
func VerifyPassword(password, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPassword(password)), []byte(digest)) == 1
}
