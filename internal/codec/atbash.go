package codec

// Atbash mirrors ASCII letters (a<->z, b<->y, ...). It is its own inverse.
type Atbash struct{}

// Method implements Codec.
func (Atbash) Method() Method { return MethodAtbash }

// Encode implements Codec.
func (Atbash) Encode(text string) (string, error) { return Mirror(text), nil }

// Decode implements Codec.
func (Atbash) Decode(text string) (string, error) { return Mirror(text), nil }

// Mirror applies the atbash substitution, preserving case.
func Mirror(text string) string {
	out := []rune(text)

	for i, r := range out {
		switch {
		case r >= 'a' && r <= 'z':
			out[i] = 'z' - (r - 'a')
		case r >= 'A' && r <= 'Z':
			out[i] = 'Z' - (r - 'A')
		}
	}

	return string(out)
}
