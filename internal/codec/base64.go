package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Base64 is standard, padded Base64 over the UTF-8 bytes of the text.
type Base64 struct{}

// Method implements Codec.
func (Base64) Method() Method { return MethodBase64 }

// Encode implements Codec.
func (Base64) Encode(text string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(text)), nil
}

// Decode implements Codec.
func (Base64) Decode(text string) (string, error) {
	// The decoder silently skips line breaks, even in strict mode.
	if strings.ContainsAny(text, "\r\n") {
		return "", fmt.Errorf("%w: line break in input", ErrMalformedBase64)
	}

	data, err := base64.StdEncoding.Strict().DecodeString(text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedBase64, err)
	}

	return string(data), nil
}
