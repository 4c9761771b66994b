package detect

import (
	"unicode"
	"unicode/utf8"
)

//nolint:gochecknoglobals
var arabic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0600, Hi: 0x06FF, Stride: 1},
		{Lo: 0x0750, Hi: 0x077F, Stride: 1},
		{Lo: 0x08A0, Hi: 0x08FF, Stride: 1},
		{Lo: 0xFB50, Hi: 0xFDFF, Stride: 1},
		{Lo: 0xFE70, Hi: 0xFEFF, Stride: 1},
	},
}

// Printable reports whether s is valid UTF-8 made only of printable ASCII,
// whitespace and Arabic script.
func Printable(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}

	for _, r := range s {
		switch {
		case r >= 0x20 && r <= 0x7E:
		case r == '\t', r == '\n', r == '\r':
		case unicode.Is(arabic, r):
		default:
			return false
		}
	}

	return true
}

func hasASCIILetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}

	return false
}
