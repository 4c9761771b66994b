// Package activation issues and checks the codes that unlock automatic cipher detection.
//
// A code looks like DTC-<6 alphanumerics>-<hex checksum>. The checksum mixes the issue
// time with one character of the random segment, which makes codes look distinct but
// proves nothing: Validate is a structural check only and accepts any code of the right
// shape, whether or not its checksum matches the segment.
package activation

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	// Prefix starts every activation code.
	Prefix = "DTC-"
	// SegmentLength is the length of the random segment.
	SegmentLength = 6
	// MinChecksumLength is the shortest checksum accepted by Validate.
	MinChecksumLength = 2

	alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	separator  = "-"
	fieldCount = 3
)

// ErrEntropy is returned when the random source fails.
var ErrEntropy = errors.New("reading activation entropy")

// Generator issues activation codes.
type Generator struct {
	random io.Reader
	now    func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandom replaces crypto/rand as the source of the random segment.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) { g.random = r }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator returns a Generator backed by crypto/rand and the wall clock unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{random: rand.Reader, now: time.Now}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate returns a new code.
func (g *Generator) Generate() (string, error) {
	segment, err := g.segment()
	if err != nil {
		return "", err
	}

	return Prefix + segment + separator + Checksum(segment, g.now()), nil
}

func (g *Generator) segment() (string, error) {
	buf := make([]byte, SegmentLength)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return string(buf), nil
}

// Checksum mixes the issue time with one character of segment and formats it as
// six lowercase hex digits.
func Checksum(segment string, issued time.Time) string {
	const (
		multiplier = 31
		modulus    = 0x1000000
	)

	ms := issued.UnixMilli()
	if ms < 0 {
		ms = -ms
	}

	var mix int64
	if segment != "" {
		mix = int64(segment[ms%int64(len(segment))])
	}

	return fmt.Sprintf("%06x", (ms+multiplier*mix)%modulus)
}

// Validate reports whether code has the structure of an activation code: the DTC- prefix,
// exactly three hyphen separated fields, a six character segment and a checksum of at
// least two characters. The checksum is not recomputed.
func Validate(code string) bool {
	if !strings.HasPrefix(code, Prefix) {
		return false
	}

	fields := strings.Split(code, separator)
	if len(fields) != fieldCount {
		return false
	}

	return len(fields[1]) == SegmentLength && len(fields[2]) >= MinChecksumLength
}
