// Package password derives and verifies salted credential hashes.
//
// Stored values are "saltHex:derivedKeyHex". The derivation is PBKDF2 with
// SHA-512, deliberately slow so that brute-forcing leaked hashes stays
// expensive. Verification is constant-time.
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	iterations = 100000
	keyLength  = 64
)

// Hash derives a stored value for the given password. Two calls with the
// same password produce different values because the salt is random.
func Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(password), []byte(saltHex), iterations, keyLength, sha512.New)
	return saltHex + ":" + hex.EncodeToString(key), nil
}

// Verify reports whether password matches the stored "salt:hash" value.
// Malformed stored values (empty, no separator, bad hex) are false, never
// an error: a corrupt credential row must deny login, not crash the request.
func Verify(password, stored string) bool {
	if stored == "" || !strings.Contains(stored, ":") {
		return false
	}

	parts := strings.SplitN(stored, ":", 2)
	salt, originalHex := parts[0], parts[1]

	original, err := hex.DecodeString(originalHex)
	if err != nil {
		return false
	}

	computed := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha512.New)
	if len(original) != len(computed) {
		return false
	}

	return subtle.ConstantTimeCompare(original, computed) == 1
}
