package codec

import (
	"strconv"
	"strings"
)

const lolSeparator = "-"

// EncodeLOL maps ASCII letters to their alphabet position (a=1 .. z=26), joined by hyphens.
// Other characters are dropped.
func EncodeLOL(text string) string {
	var parts []string

	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			parts = append(parts, strconv.Itoa(int(r-'a')+1))
		}
	}

	return strings.Join(parts, lolSeparator)
}

// DecodeLOL maps hyphen-delimited numbers 1..26 back to the letters a..z.
// Tokens outside that range are kept verbatim.
func DecodeLOL(text string) string {
	tokens := strings.Split(text, lolSeparator)

	var out strings.Builder

	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 || n > alphabetSize {
			out.WriteString(tok)

			continue
		}

		out.WriteRune(rune('a' + n - 1))
	}

	return out.String()
}

// IsLOL reports whether text consists solely of digits and hyphens and has at least one digit.
func IsLOL(text string) bool {
	digits := 0

	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '-':
		default:
			return false
		}
	}

	return digits > 0
}
