package detect

import (
	"github.com/idelchi/gobmo/internal/bmo"
	"github.com/idelchi/gobmo/internal/codec"
)

// Strategy proposes candidate decodings for one cipher family.
// Implementations must be safe for concurrent use.
type Strategy interface {
	Name() string
	Detect(text string) []Candidate
}

// BMO decodes enveloped input.
type BMO struct {
	Cipher *bmo.Cipher
}

// Name implements Strategy.
func (BMO) Name() string { return string(codec.MethodBMO) }

// Detect implements Strategy.
func (s BMO) Detect(text string) []Candidate {
	if !bmo.IsEnveloped(text) {
		return nil
	}

	out, err := s.Cipher.Decode(text)
	if err != nil {
		return nil
	}

	return []Candidate{{Method: s.Name(), Result: out, Confidence: ConfidenceBMO}}
}

// Base64 accepts strict standard Base64 that decodes to printable text.
type Base64 struct{}

// Name implements Strategy.
func (Base64) Name() string { return string(codec.MethodBase64) }

// Detect implements Strategy.
func (s Base64) Detect(text string) []Candidate {
	out, err := codec.Base64{}.Decode(text)
	if err != nil || out == "" || !Printable(out) {
		return nil
	}

	return []Candidate{{Method: s.Name(), Result: out, Confidence: ConfidenceBase64}}
}

// Caesar tries every shift and keeps the ones that read as natural language.
type Caesar struct {
	words *wordMatcher
}

// Name implements Strategy.
func (Caesar) Name() string { return string(codec.MethodCaesar) }

// Detect implements Strategy.
func (s Caesar) Detect(text string) []Candidate {
	if !hasASCIILetter(text) {
		return nil
	}

	const shifts = 25

	var out []Candidate

	for n := 1; n <= shifts; n++ {
		decoded := codec.Shift(text, -n)
		if s.words.Match(decoded) {
			out = append(out, Candidate{Method: s.Name(), Result: decoded, Confidence: ConfidenceCaesar, Shift: n})
		}
	}

	return out
}

// Atbash proposes the mirrored text whenever it differs from the input.
type Atbash struct{}

// Name implements Strategy.
func (Atbash) Name() string { return string(codec.MethodAtbash) }

// Detect implements Strategy.
func (s Atbash) Detect(text string) []Candidate {
	return ifChanged(s.Name(), text, codec.Mirror(text), ConfidenceAtbash)
}

// LOL decodes hyphen-delimited letter positions such as 8-5-12-12-15.
type LOL struct{}

// Name implements Strategy.
func (LOL) Name() string { return "lol" }

// Detect implements Strategy.
func (s LOL) Detect(text string) []Candidate {
	if !codec.IsLOL(text) {
		return nil
	}

	return ifChanged(s.Name(), text, codec.DecodeLOL(text), ConfidenceLOL)
}

// Reverse proposes the reversed text whenever it differs from the input.
type Reverse struct{}

// Name implements Strategy.
func (Reverse) Name() string { return string(codec.MethodReverse) }

// Detect implements Strategy.
func (s Reverse) Detect(text string) []Candidate {
	return ifChanged(s.Name(), text, codec.Flip(text), ConfidenceReverse)
}

func ifChanged(method, in, out string, confidence int) []Candidate {
	if out == in {
		return nil
	}

	return []Candidate{{Method: method, Result: out, Confidence: confidence}}
}
