package service

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Credential records are stored as a 64-character hex salt followed by a
// 128-character hex PBKDF2-HMAC-SHA512 digest, concatenated with no
// delimiter. The salt string itself (not its decoded bytes) feeds the key
// derivation, matching the records already in production databases.
const (
	// DefaultPBKDF2Iterations is the minimum iteration count accepted in
	// production. Tests may pass a lower count to the auth service.
	DefaultPBKDF2Iterations = 100_000

	saltBytes     = 32
	saltHexLen    = 2 * saltBytes
	derivedKeyLen = 64
	recordLen     = saltHexLen + 2*derivedKeyLen
)

// HashPassword derives a credential record from a plaintext password using
// a fresh random salt. Two calls with the same password yield different
// records.
func HashPassword(plaintext string, iterations int) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)
	return saltHex + deriveDigest(plaintext, saltHex, iterations), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// credential record. Malformed records verify as false; this never panics
// regardless of the record contents.
func VerifyPassword(plaintext, record string, iterations int) bool {
	if len(record) != recordLen {
		return false
	}
	saltHex, stored := record[:saltHexLen], record[saltHexLen:]
	digest := deriveDigest(plaintext, saltHex, iterations)
	return subtle.ConstantTimeCompare([]byte(stored), []byte(digest)) == 1
}

func deriveDigest(plaintext, saltHex string, iterations int) string {
	key := pbkdf2.Key([]byte(plaintext), []byte(saltHex), iterations, derivedKeyLen, sha512.New)
	return hex.EncodeToString(key)
}
