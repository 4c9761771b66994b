package bmo

import (
	"fmt"
	"time"
	"unicode/utf16"
)

// Cipher encodes and decodes BMO text. The zero value is not usable; use New.
type Cipher struct {
	clock Clock
	salts SaltSource
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithClock replaces the wall clock.
func WithClock(clock Clock) Option {
	return func(c *Cipher) { c.clock = clock }
}

// WithSaltSource replaces the crypto/rand salt generator.
func WithSaltSource(salts SaltSource) Option {
	return func(c *Cipher) { c.salts = salts }
}

// New returns a Cipher using the wall clock and crypto/rand unless overridden.
func New(opts ...Option) *Cipher {
	c := &Cipher{
		clock: ClockFunc(time.Now),
		salts: SaltFunc(randomSalt),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Encode runs the five stages over text.
func (c *Cipher) Encode(text string) (string, error) {
	salt, err := c.salts.Salt()
	if err != nil {
		return "", err
	}

	if !validSalt(salt) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSalt, salt)
	}

	stamp := Stamp(c.clock.Now())

	stream := expand(utf16.Encode([]rune(text)), salt)
	body := scramble(stream, stamp)

	return seal(shift(salt + stamp + body)), nil
}

// Decode inverts Encode. It fails with ErrMissingEnvelope or ErrMalformed.
func (c *Cipher) Decode(text string) (string, error) {
	data, err := open(text)
	if err != nil {
		return "", err
	}

	combined := unshift(data)
	if len(combined) < headerLength {
		return "", fmt.Errorf("%w: header too short", ErrMalformed)
	}

	salt, stamp, body := combined[:SaltLength], combined[SaltLength:headerLength], combined[headerLength:]

	if !validSalt(salt) {
		return "", fmt.Errorf("%w: bad salt %q", ErrMalformed, salt)
	}

	if !validStamp(stamp) {
		return "", fmt.Errorf("%w: bad timestamp %q", ErrMalformed, stamp)
	}

	stream, err := unscramble(body, stamp)
	if err != nil {
		return "", err
	}

	units, err := contract(stream, salt)
	if err != nil {
		return "", err
	}

	return string(utf16.Decode(units)), nil
}

// Stamp returns the last six decimal digits of t in Unix milliseconds.
func Stamp(t time.Time) string {
	const modulus = 1_000_000

	ms := t.UnixMilli() % modulus
	if ms < 0 {
		ms += modulus
	}

	return fmt.Sprintf("%06d", ms)
}
