package codec

import (
	"fmt"

	"github.com/idelchi/gobmo/internal/bmo"
)

// Codec is a named encode/decode pair.
type Codec interface {
	Method() Method
	Encode(text string) (string, error)
	Decode(text string) (string, error)
}

// Registry maps methods to codecs. It is read-only after construction.
type Registry struct {
	codecs map[Method]Codec
}

// NewRegistry builds a registry holding the simple ciphers and the given BMO cipher.
// A nil cipher falls back to bmo.New with default entropy.
func NewRegistry(cipher *bmo.Cipher) *Registry {
	if cipher == nil {
		cipher = bmo.New()
	}

	reg := &Registry{codecs: make(map[Method]Codec)}

	for _, c := range []Codec{
		Caesar{},
		Atbash{},
		Reverse{},
		Base64{},
		bmoCodec{cipher: cipher},
	} {
		reg.codecs[c.Method()] = c
	}

	return reg
}

// Lookup returns the codec for method.
func (r *Registry) Lookup(method Method) (Codec, bool) {
	c, ok := r.codecs[method]

	return c, ok
}

// Encode applies method to text. Unknown methods return text unchanged.
func (r *Registry) Encode(text string, method Method) (string, error) {
	c, ok := r.Lookup(method)
	if !ok {
		return text, nil
	}

	out, err := c.Encode(text)
	if err != nil {
		return "", fmt.Errorf("%s encode: %w", method, err)
	}

	return out, nil
}

// Decode inverts method on text. Unknown methods return text unchanged.
func (r *Registry) Decode(text string, method Method) (string, error) {
	c, ok := r.Lookup(method)
	if !ok {
		return text, nil
	}

	out, err := c.Decode(text)
	if err != nil {
		return "", fmt.Errorf("%s decode: %w", method, err)
	}

	return out, nil
}

type bmoCodec struct {
	cipher *bmo.Cipher
}

func (bmoCodec) Method() Method { return MethodBMO }

func (b bmoCodec) Encode(text string) (string, error) { return b.cipher.Encode(text) }

func (b bmoCodec) Decode(text string) (string, error) { return b.cipher.Decode(text) }
