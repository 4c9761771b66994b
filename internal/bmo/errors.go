package bmo

import "errors"

var (
	// ErrMissingEnvelope is returned when the input is not framed by the BMO and END markers.
	ErrMissingEnvelope = errors.New("missing BMO envelope")
	// ErrMalformed is returned when a framed input cannot be decoded.
	ErrMalformed = errors.New("malformed BMO ciphertext")
	// ErrInvalidSalt is returned when the salt source yields something other than 8 lowercase hex digits.
	ErrInvalidSalt = errors.New("invalid salt")
)
