// Package detect guesses which cipher produced an opaque string.
//
// A Detector runs every registered Strategy against the input. Each strategy proposes
// zero or more candidate decodings with a fixed confidence; the detector ranks them and
// renders a short report. A strategy that panics is dropped from the result, it never
// aborts the sweep.
package detect
