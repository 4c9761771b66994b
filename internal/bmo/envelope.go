package bmo

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	envelopePrefix = "BMO"
	envelopeSuffix = "END"
)

// frameEncoding is standard Base64 with '+' written as '_' and '/' as '-', without padding.
//
//nolint:gochecknoglobals
var frameEncoding = base64.NewEncoding(
	"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-",
).WithPadding(base64.NoPadding).Strict()

// IsEnveloped reports whether s carries the BMO markers.
func IsEnveloped(s string) bool {
	return len(s) >= len(envelopePrefix)+len(envelopeSuffix) &&
		strings.HasPrefix(s, envelopePrefix) &&
		strings.HasSuffix(s, envelopeSuffix)
}

// seal is stage 4.
func seal(data []byte) string {
	return envelopePrefix + frameEncoding.EncodeToString(data) + envelopeSuffix
}

// open inverts seal.
func open(s string) ([]byte, error) {
	if !IsEnveloped(s) {
		return nil, ErrMissingEnvelope
	}

	payload := s[len(envelopePrefix) : len(s)-len(envelopeSuffix)]
	if strings.ContainsAny(payload, "\r\n") {
		return nil, fmt.Errorf("%w: stage 4: line break in payload", ErrMalformed)
	}

	data, err := frameEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: stage 4: %w", ErrMalformed, err)
	}

	return data, nil
}
