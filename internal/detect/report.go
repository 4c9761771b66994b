package detect

import (
	"fmt"
	"strings"
)

const (
	// Alternatives is the number of runner-up candidates shown in a summary.
	Alternatives = 2
	// PreviewLength is the maximum number of runes shown for a runner-up.
	PreviewLength = 50
)

// Unrecognized is the summary of a report without candidates.
const Unrecognized = "no cipher recognized"

// Report is the outcome of one detection.
type Report struct {
	Recognized bool        `json:"recognized" yaml:"recognized"`
	Candidates []Candidate `json:"candidates" yaml:"candidates"`
	Summary    string      `json:"summary"    yaml:"summary"`
}

// Best returns the top candidate.
func (r Report) Best() (Candidate, bool) {
	if len(r.Candidates) == 0 {
		return Candidate{}, false
	}

	return r.Candidates[0], true
}

func newReport(candidates []Candidate) Report {
	if len(candidates) == 0 {
		return Report{Summary: Unrecognized}
	}

	return Report{
		Recognized: true,
		Candidates: candidates,
		Summary:    summarize(candidates),
	}
}

func summarize(candidates []Candidate) string {
	var b strings.Builder

	top := candidates[0]

	fmt.Fprintf(&b, "Method: %s\n", top.Label())
	fmt.Fprintf(&b, "Confidence: %d%%\n", top.Confidence)
	fmt.Fprintf(&b, "Result: %s", top.Result)

	rest := candidates[1:]
	if len(rest) == 0 {
		return b.String()
	}

	b.WriteString("\nAlternatives:")

	for _, c := range rest[:min(len(rest), Alternatives)] {
		fmt.Fprintf(&b, "\n  - %s (%d%%): %s", c.Label(), c.Confidence, Preview(c.Result))
	}

	return b.String()
}

// Preview truncates s to PreviewLength runes, marking the cut with an ellipsis.
func Preview(s string) string {
	runes := []rune(s)
	if len(runes) <= PreviewLength {
		return s
	}

	return string(runes[:PreviewLength]) + "..."
}
