package detect

import "strconv"

// Confidence levels assigned by the built-in strategies.
const (
	ConfidenceBMO     = 95
	ConfidenceBase64  = 80
	ConfidenceLOL     = 70
	ConfidenceCaesar  = 60
	ConfidenceAtbash  = 50
	ConfidenceReverse = 40
)

// Candidate is one plausible decoding of the input.
type Candidate struct {
	Method     string `json:"method"          yaml:"method"`
	Result     string `json:"result"          yaml:"result"`
	Confidence int    `json:"confidence"      yaml:"confidence"`
	Shift      int    `json:"shift,omitempty" yaml:"shift,omitempty"`
}

// Label is the method name, with the shift for Caesar candidates.
func (c Candidate) Label() string {
	if c.Shift != 0 {
		return c.Method + " (shift " + strconv.Itoa(c.Shift) + ")"
	}

	return c.Method
}

// clamp bounds a confidence to [0,100].
func clamp(confidence int) int {
	const ceiling = 100

	return min(max(confidence, 0), ceiling)
}
