package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gobmo/internal/bmo"
	"github.com/idelchi/gobmo/internal/codec"
	"github.com/idelchi/gobmo/internal/detect"
	"github.com/idelchi/gobmo/internal/engine"
)

func newEngine(t *testing.T, opts ...engine.Option) *engine.Engine {
	t.Helper()

	e, err := engine.New(opts...)
	require.NoError(t, err)

	return e
}

func TestScenarios(t *testing.T) {
	t.Parallel()

	e := newEngine(t)

	tests := []struct {
		input  string
		method codec.Method
		op     codec.Operation
		want   string
	}{
		{"Hello", codec.MethodCaesar, codec.OpEncode, "Khoor"},
		{"Khoor", codec.MethodCaesar, codec.OpDecode, "Hello"},
		{"Hello", codec.MethodReverse, codec.OpEncode, "olleH"},
		{"olleH", codec.MethodReverse, codec.OpDecode, "Hello"},
		{"Hello", codec.MethodAtbash, codec.OpEncode, "Svool"},
		{"Hello", codec.MethodBase64, codec.OpEncode, "SGVsbG8="},
		{"Hello", "unknown", codec.OpEncode, "Hello"},
		{"Hello", "unknown", codec.OpDecode, "Hello"},
	}

	for _, tt := range tests {
		res := e.Process(tt.input, tt.method, tt.op)
		require.NoError(t, res.Error)
		assert.True(t, res.OK())
		assert.Equal(t, tt.want, res.Output, "%s %s %q", tt.op, tt.method, tt.input)
		assert.Nil(t, res.Report)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	e := newEngine(t)

	for _, m := range codec.Methods() {
		for _, s := range []string{"Hello", "مرحبا بكم", "a b c 1 2 3 ~!"} {
			enc, err := e.Encode(s, m)
			require.NoError(t, err)

			dec, err := e.Decode(enc, m)
			require.NoError(t, err)
			assert.Equal(t, s, dec, "method %s", m)
		}
	}
}

func TestBMOEnvelope(t *testing.T) {
	t.Parallel()

	e := newEngine(t)

	out, err := e.Encode("anything", codec.MethodBMO)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "BMO"))
	assert.True(t, strings.HasSuffix(out, "END"))

	res := e.Process("not-a-bmo-string", codec.MethodBMO, codec.OpDecode)
	require.ErrorIs(t, res.Error, bmo.ErrMissingEnvelope)
	assert.False(t, res.OK())
	assert.Empty(t, res.Output)
}

func TestBase64Failure(t *testing.T) {
	t.Parallel()

	res := newEngine(t).Process("@@@", codec.MethodBase64, codec.OpDecode)
	require.ErrorIs(t, res.Error, codec.ErrMalformedBase64)
}

func TestAutoIgnoresMethod(t *testing.T) {
	t.Parallel()

	res := newEngine(t).Process("Khoor", codec.MethodBMO, codec.OpAuto)
	require.NoError(t, res.Error)
	require.NotNil(t, res.Report)
	assert.Empty(t, res.Method)
	assert.Equal(t, "Hello", res.Output)
	assert.Equal(t, "caesar", res.Report.Candidates[0].Method)
}

func TestAutoUnrecognized(t *testing.T) {
	t.Parallel()

	res := newEngine(t).Process("", codec.MethodCaesar, codec.OpAuto)
	require.NoError(t, res.Error)
	require.NotNil(t, res.Report)
	assert.False(t, res.Report.Recognized)
	assert.Equal(t, detect.Unrecognized, res.Report.Summary)
	assert.Empty(t, res.Output)
}

func TestAutoActivationGate(t *testing.T) {
	t.Parallel()

	locked := newEngine(t, engine.RequireActivation("not-a-code"))

	res := locked.Process("Khoor", "", codec.OpAuto)
	require.ErrorIs(t, res.Error, engine.ErrActivationRequired)
	assert.Nil(t, res.Report)

	// The gate only applies to auto; explicit methods stay available.
	res = locked.Process("Khoor", codec.MethodCaesar, codec.OpDecode)
	require.NoError(t, res.Error)

	code, err := locked.GenerateActivationCode()
	require.NoError(t, err)
	assert.True(t, locked.ValidateActivationCode(code))

	unlocked := newEngine(t, engine.RequireActivation(code))

	res = unlocked.Process("Khoor", "", codec.OpAuto)
	require.NoError(t, res.Error)
	assert.Equal(t, "Hello", res.Output)
}

func TestUnknownOperation(t *testing.T) {
	t.Parallel()

	res := newEngine(t).Process("Hello", codec.MethodCaesar, "encrypt")
	require.ErrorIs(t, res.Error, codec.ErrUnknownOperation)
}

func TestSharedCipher(t *testing.T) {
	t.Parallel()

	cipher := bmo.New(bmo.WithSaltSource(bmo.SaltFunc(func() (string, error) { return "00000000", nil })))

	e := newEngine(t, engine.WithCipher(cipher), engine.WithWords(detect.Words{English: []string{"zebra"}}))

	enc, err := e.Encode("zebra crossing", codec.MethodBMO)
	require.NoError(t, err)

	best, ok := e.Detect(enc).Best()
	require.True(t, ok)
	assert.Equal(t, "bmo", best.Method)
	assert.Equal(t, "zebra crossing", best.Result)
}
