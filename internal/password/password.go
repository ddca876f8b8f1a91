// Package password derives and checks salted password digests.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters, RFC 9106 second recommended option.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
	argonKeyLen  = 32

	SaltLength = 16
)

// GenerateSalt returns SaltLength bytes read from crypto/rand.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// Hash derives the argon2id digest of password under salt.
// The same inputs always produce the same digest.
func Hash(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// Equal recomputes the digest of password under salt and compares it
// against digest in constant time.
func Equal(password string, salt, digest []byte) bool {
	return subtle.ConstantTimeCompare(Hash(password, salt), digest) == 1
}
