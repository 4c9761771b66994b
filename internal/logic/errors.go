package logic

import "errors"

var (
	// ErrNoActivationCode is returned when activation is required but no code was given.
	ErrNoActivationCode = errors.New("activation required: set --code or --code-file")

	// ErrOverwrite is returned when decoding would write over its own input.
	ErrOverwrite = errors.New("output would overwrite input")

	// ErrInvalidCode is returned when an activation code does not have the expected shape.
	ErrInvalidCode = errors.New("invalid activation code")
)
