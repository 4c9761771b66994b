package engine

import (
	"github.com/idelchi/gobmo/internal/codec"
	"github.com/idelchi/gobmo/internal/detect"
)

// Result is the outcome of processing a single input.
type Result struct {
	// Input text
	Input string `json:"input" yaml:"input"`

	// Output text; for detection, the best candidate's decoding
	Output string `json:"output" yaml:"output"`

	Method    codec.Method    `json:"method,omitempty" yaml:"method,omitempty"`
	Operation codec.Operation `json:"operation"        yaml:"operation"`

	// Report is set for detection only
	Report *detect.Report `json:"report,omitempty" yaml:"report,omitempty"`

	// Any error that occurred during processing
	Error error `json:"-" yaml:"-"`
}

// OK reports whether processing succeeded.
func (r Result) OK() bool {
	return r.Error == nil
}
