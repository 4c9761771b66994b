package bmo

import (
	"fmt"
	"strconv"
)

const (
	unitWidth    = 4 // hex digits per UTF-16 unit in stage 1
	byteWidth    = 2 // hex digits per XORed byte in stage 2
	stampLength  = 6 // timestamp digits carried in the header
	headerLength = SaltLength + stampLength
	shiftPeriod  = 5
)

// hexValue returns the numeric value of a hex digit.
func hexValue(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

// noise is the stage 1 offset for the unit at index i.
func noise(i int, salt string) uint16 {
	v, _ := hexValue(salt[i%len(salt)])

	return uint16((i*7 + v) % 256) //nolint:gosec // bounded by 256
}

// expand is stage 1: add positional noise to every unit and emit it as 4 hex digits.
func expand(units []uint16, salt string) string {
	out := make([]byte, 0, len(units)*unitWidth)

	for i, u := range units {
		out = fmt.Appendf(out, "%04x", u+noise(i, salt))
	}

	return string(out)
}

// contract inverts expand.
func contract(stream, salt string) ([]uint16, error) {
	if len(stream)%unitWidth != 0 {
		return nil, fmt.Errorf("%w: stage 1 length %d is not a multiple of %d", ErrMalformed, len(stream), unitWidth)
	}

	units := make([]uint16, 0, len(stream)/unitWidth)

	for i := 0; i < len(stream); i += unitWidth {
		v, err := strconv.ParseUint(stream[i:i+unitWidth], 16, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: stage 1 group %d: %w", ErrMalformed, i/unitWidth, err)
		}

		units = append(units, uint16(v)-noise(i/unitWidth, salt))
	}

	return units, nil
}

// key is the stage 2 XOR key for stream position i. The index wraps on the
// length of stamp, offset by the stamp's last three digits.
func key(i int, stamp string) byte {
	offset, _ := strconv.Atoi(stamp[len(stamp)-3:])

	k := stamp[(i+offset)%len(stamp)] - '0'
	if k == 0 {
		return 1
	}

	return k
}

// scramble is stage 2: XOR each stream byte with its key and emit 2 hex digits.
func scramble(stream, stamp string) string {
	out := make([]byte, 0, len(stream)*byteWidth)

	for i := range len(stream) {
		out = fmt.Appendf(out, "%02x", stream[i]^key(i, stamp))
	}

	return string(out)
}

// unscramble inverts scramble.
func unscramble(body, stamp string) (string, error) {
	if len(body)%byteWidth != 0 {
		return "", fmt.Errorf("%w: stage 2 length %d is odd", ErrMalformed, len(body))
	}

	out := make([]byte, 0, len(body)/byteWidth)

	for i := 0; i < len(body); i += byteWidth {
		v, err := strconv.ParseUint(body[i:i+byteWidth], 16, 8)
		if err != nil {
			return "", fmt.Errorf("%w: stage 2 byte %d: %w", ErrMalformed, i/byteWidth, err)
		}

		out = append(out, byte(v)^key(i/byteWidth, stamp))
	}

	return string(out), nil
}

// shift is stage 3: add (i mod 5)+1 to every byte.
func shift(s string) []byte {
	out := []byte(s)

	for i := range out {
		out[i] += byte(i%shiftPeriod) + 1
	}

	return out
}

// unshift inverts shift.
func unshift(data []byte) string {
	out := make([]byte, len(data))

	for i, b := range data {
		out[i] = b - byte(i%shiftPeriod) - 1
	}

	return string(out)
}

func validStamp(stamp string) bool {
	if len(stamp) != stampLength {
		return false
	}

	for i := range len(stamp) {
		if stamp[i] < '0' || stamp[i] > '9' {
			return false
		}
	}

	return true
}
