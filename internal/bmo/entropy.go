package bmo

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// SaltLength is the number of hex digits in a salt.
const SaltLength = 8

// Clock supplies the timestamp mixed into stage 2.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SaltSource supplies the per-message salt used in stage 1.
type SaltSource interface {
	Salt() (string, error)
}

// SaltFunc adapts a function to SaltSource.
type SaltFunc func() (string, error)

// Salt implements SaltSource.
func (f SaltFunc) Salt() (string, error) { return f() }

// randomSalt reads SaltLength/2 bytes from crypto/rand and hex encodes them.
func randomSalt() (string, error) {
	buf := make([]byte, SaltLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

func validSalt(salt string) bool {
	if len(salt) != SaltLength {
		return false
	}

	for i := range len(salt) {
		if _, ok := hexValue(salt[i]); !ok || (salt[i] >= 'A' && salt[i] <= 'F') {
			return false
		}
	}

	return true
}
