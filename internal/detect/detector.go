package detect

import (
	"fmt"
	"slices"

	"github.com/idelchi/gobmo/internal/bmo"
)

// Detector ranks candidate decodings produced by its strategies.
// It is immutable after New and safe for concurrent use.
type Detector struct {
	strategies []Strategy
}

type options struct {
	cipher     *bmo.Cipher
	words      Words
	strategies []Strategy
}

// Option configures a Detector.
type Option func(*options)

// WithCipher sets the BMO cipher used to decode enveloped input.
func WithCipher(cipher *bmo.Cipher) Option {
	return func(o *options) { o.cipher = cipher }
}

// WithWords adds function words to the built-in lists.
func WithWords(words Words) Option {
	return func(o *options) { o.words = o.words.Merge(words) }
}

// WithStrategies appends custom strategies after the built-in ones.
func WithStrategies(strategies ...Strategy) Option {
	return func(o *options) { o.strategies = append(o.strategies, strategies...) }
}

// New builds a Detector with the built-in strategies in ranking tie-break order:
// bmo, base64, caesar, atbash, lol, reverse.
func New(opts ...Option) (*Detector, error) {
	o := options{words: DefaultWords()}

	for _, opt := range opts {
		opt(&o)
	}

	if o.cipher == nil {
		o.cipher = bmo.New()
	}

	matcher, err := newWordMatcher(o.words)
	if err != nil {
		return nil, fmt.Errorf("building detector: %w", err)
	}

	strategies := []Strategy{
		BMO{Cipher: o.cipher},
		Base64{},
		Caesar{words: matcher},
		Atbash{},
		LOL{},
		Reverse{},
	}

	return &Detector{strategies: append(strategies, o.strategies...)}, nil
}

// Strategies returns the names of the strategies in the order they run.
func (d *Detector) Strategies() []string {
	names := make([]string, len(d.strategies))

	for i, s := range d.strategies {
		names[i] = s.Name()
	}

	return names
}

// Detect runs every strategy against text and returns the ranked report.
func (d *Detector) Detect(text string) Report {
	var candidates []Candidate

	for _, s := range d.strategies {
		candidates = append(candidates, attempt(s, text)...)
	}

	for i := range candidates {
		candidates[i].Confidence = clamp(candidates[i].Confidence)
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return b.Confidence - a.Confidence
	})

	return newReport(candidates)
}

// attempt isolates a strategy so that a panic only drops its candidates.
func attempt(s Strategy, text string) (candidates []Candidate) {
	defer func() {
		if recover() != nil {
			candidates = nil
		}
	}()

	return s.Detect(text)
}
