package logic

import (
	"github.com/idelchi/gobmo/internal/engine"
)

// Entry is one processed input as rendered to the user.
type Entry struct {
	// Source file path, in file mode
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Target file path, when a file was written
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	engine.Result `yaml:",inline"`

	index int
	label string
	bytes int64
	err   error
}
