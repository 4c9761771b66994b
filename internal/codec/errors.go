package codec

import "errors"

var (
	// ErrMalformedBase64 is returned when Base64 input has an invalid alphabet or padding.
	ErrMalformedBase64 = errors.New("malformed base64")
	// ErrUnknownOperation is returned for operations other than encode, decode or auto.
	ErrUnknownOperation = errors.New("unknown operation")
)
