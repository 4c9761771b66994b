package codec

import "slices"

// Reverse reverses the code points of the text. It is its own inverse.
type Reverse struct{}

// Method implements Codec.
func (Reverse) Method() Method { return MethodReverse }

// Encode implements Codec.
func (Reverse) Encode(text string) (string, error) { return Flip(text), nil }

// Decode implements Codec.
func (Reverse) Decode(text string) (string, error) { return Flip(text), nil }

// Flip returns text with its runes in reverse order.
func Flip(text string) string {
	runes := []rune(text)
	slices.Reverse(runes)

	return string(runes)
}
