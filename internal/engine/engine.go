package engine

import (
	"fmt"

	"github.com/idelchi/gobmo/internal/activation"
	"github.com/idelchi/gobmo/internal/bmo"
	"github.com/idelchi/gobmo/internal/codec"
	"github.com/idelchi/gobmo/internal/detect"
)

// Engine encodes, decodes and detects text. It holds no per-call state and is safe for
// concurrent use.
type Engine struct {
	registry   *codec.Registry
	detector   *detect.Detector
	activation *activation.Generator

	// gated is set when auto detection must be unlocked by code
	gated bool
	code  string
}

type options struct {
	cipher     *bmo.Cipher
	detectOpts []detect.Option
	genOpts    []activation.Option
	gated      bool
	code       string
}

// Option configures an Engine.
type Option func(*options)

// WithCipher sets the BMO cipher shared by the registry and the detector.
func WithCipher(cipher *bmo.Cipher) Option {
	return func(o *options) { o.cipher = cipher }
}

// WithWords extends the detector's function words.
func WithWords(words detect.Words) Option {
	return func(o *options) { o.detectOpts = append(o.detectOpts, detect.WithWords(words)) }
}

// WithActivation configures the activation code generator.
func WithActivation(opts ...activation.Option) Option {
	return func(o *options) { o.genOpts = append(o.genOpts, opts...) }
}

// RequireActivation gates auto detection behind code.
func RequireActivation(code string) Option {
	return func(o *options) {
		o.gated = true
		o.code = code
	}
}

// New builds an Engine.
func New(opts ...Option) (*Engine, error) {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	if o.cipher == nil {
		o.cipher = bmo.New()
	}

	detector, err := detect.New(append([]detect.Option{detect.WithCipher(o.cipher)}, o.detectOpts...)...)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}

	return &Engine{
		registry:   codec.NewRegistry(o.cipher),
		detector:   detector,
		activation: activation.NewGenerator(o.genOpts...),
		gated:      o.gated,
		code:       o.code,
	}, nil
}

// Encode applies method to text. Unknown methods return text unchanged.
func (e *Engine) Encode(text string, method codec.Method) (string, error) {
	return e.registry.Encode(text, method)
}

// Decode inverts method on text. Unknown methods return text unchanged.
func (e *Engine) Decode(text string, method codec.Method) (string, error) {
	return e.registry.Decode(text, method)
}

// Detect guesses the cipher behind text. It is not gated.
func (e *Engine) Detect(text string) detect.Report {
	return e.detector.Detect(text)
}

// Process dispatches on op. For OpAuto the method is ignored and the detector runs,
// subject to the activation gate.
func (e *Engine) Process(text string, method codec.Method, op codec.Operation) Result {
	res := Result{Input: text, Method: method, Operation: op}

	switch op {
	case codec.OpEncode:
		res.Output, res.Error = e.Encode(text, method)
	case codec.OpDecode:
		res.Output, res.Error = e.Decode(text, method)
	case codec.OpAuto:
		res.Method = ""

		if e.gated && !activation.Validate(e.code) {
			res.Error = ErrActivationRequired

			break
		}

		report := e.Detect(text)
		res.Report = &report

		if best, ok := report.Best(); ok {
			res.Output = best.Result
		}
	default:
		res.Error = fmt.Errorf("%w: %q", codec.ErrUnknownOperation, op)
	}

	return res
}

// GenerateActivationCode issues a new activation code.
func (e *Engine) GenerateActivationCode() (string, error) {
	return e.activation.Generate()
}

// ValidateActivationCode checks the structure of code.
func (e *Engine) ValidateActivationCode(code string) bool {
	return activation.Validate(code)
}
