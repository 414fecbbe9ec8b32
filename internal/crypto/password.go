// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters shared by every admin password hash. Changing any of
// them invalidates all configured hashes.
const (
	argonTime    uint32 = 2
	argonMemory  uint32 = 64 * 1024 // 64 MiB
	argonThreads uint8  = 1
	argonKeyLen  uint32 = 32
	saltLen             = 16
)

var (
	// ErrEmptyPassword is returned by HashPassword for an empty password.
	ErrEmptyPassword = errors.New("empty password")

	// ErrMalformedHash is returned when a stored hash is not "<salt>:<hash>"
	// with both parts base64 encoded.
	ErrMalformedHash = errors.New("malformed password hash")
)

// HashPassword derives an argon2id digest of password with a fresh random
// salt and returns it as "<salt>:<hash>" in standard base64.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return base64.StdEncoding.EncodeToString(salt) + ":" + base64.StdEncoding.EncodeToString(hash), nil
}

// VerifyPassword reports whether password matches storedHash.
//
// The comparison runs in constant time. An error is returned only when
// storedHash cannot be parsed; a wrong password yields (false, nil).
func VerifyPassword(password, storedHash string) (bool, error) {
	salt, expected, err := parseHash(storedHash)
	if err != nil {
		return false, err
	}

	actual := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(expected, actual) == 1, nil
}

// ValidateHash checks that storedHash has the expected shape without running
// the key derivation.
func ValidateHash(storedHash string) error {
	_, _, err := parseHash(storedHash)
	return err
}

func parseHash(storedHash string) (salt, hash []byte, err error) {
	saltB64, hashB64, ok := strings.Cut(strings.TrimSpace(storedHash), ":")
	if !ok {
		return nil, nil, ErrMalformedHash
	}

	if salt, err = decodeBase64(saltB64); err != nil || len(salt) == 0 {
		return nil, nil, fmt.Errorf("%w: salt", ErrMalformedHash)
	}
	if hash, err = decodeBase64(hashB64); err != nil || len(hash) == 0 {
		return nil, nil, fmt.Errorf("%w: hash", ErrMalformedHash)
	}

	return salt, hash, nil
}

// decodeBase64 accepts both padded and unpadded standard base64.
func decodeBase64(s string) ([]byte, error) {
	if strings.HasSuffix(s, "=") {
		return base64.StdEncoding.DecodeString(s)
	}
	return base64.RawStdEncoding.DecodeString(s)
}
