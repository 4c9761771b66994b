package codec

// CaesarShift is the fixed shift applied by the caesar method.
const CaesarShift = 3

const alphabetSize = 26

// Caesar shifts ASCII letters forward by CaesarShift.
type Caesar struct{}

// Method implements Codec.
func (Caesar) Method() Method { return MethodCaesar }

// Encode implements Codec.
func (Caesar) Encode(text string) (string, error) {
	return Shift(text, CaesarShift), nil
}

// Decode implements Codec.
func (Caesar) Decode(text string) (string, error) {
	return Shift(text, -CaesarShift), nil
}

// Shift rotates every ASCII letter of text by n positions within its case,
// wrapping around the alphabet. Negative n shifts backward.
func Shift(text string, n int) string {
	n %= alphabetSize
	if n < 0 {
		n += alphabetSize
	}

	out := []rune(text)

	for i, r := range out {
		switch {
		case r >= 'a' && r <= 'z':
			out[i] = 'a' + (r-'a'+rune(n))%alphabetSize
		case r >= 'A' && r <= 'Z':
			out[i] = 'A' + (r-'A'+rune(n))%alphabetSize
		}
	}

	return string(out)
}
