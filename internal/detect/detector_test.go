package detect_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gobmo/internal/bmo"
	"github.com/idelchi/gobmo/internal/codec"
	"github.com/idelchi/gobmo/internal/detect"
)

func newDetector(t *testing.T, opts ...detect.Option) *detect.Detector {
	t.Helper()

	d, err := detect.New(opts...)
	require.NoError(t, err)

	return d
}

func TestDetectCaesar(t *testing.T) {
	t.Parallel()

	const plain = "the quick brown fox jumps over the lazy dog"

	cipher := codec.Shift(plain, codec.CaesarShift)

	report := newDetector(t).Detect(cipher)
	require.True(t, report.Recognized)

	want := []detect.Candidate{
		{Method: "caesar", Result: plain, Confidence: 60, Shift: 3},
		{Method: "atbash", Result: "dps gcoum vfiaj riz nckhe ibsf dps lwxy tiq", Confidence: 50},
		{Method: "reverse", Result: "jrg bcdo hkw uhyr vspxm ari qzrue nflxt hkw", Confidence: 40},
	}

	if diff := cmp.Diff(want, report.Candidates); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectCaesarHello(t *testing.T) {
	t.Parallel()

	report := newDetector(t).Detect("Khoor Zruog, wklv lv d vhfuhw phvvdjh")

	best, ok := report.Best()
	require.True(t, ok)
	assert.Equal(t, "caesar", best.Method)
	assert.Equal(t, 3, best.Shift)
	assert.Equal(t, "Hello World, this is a secret message", best.Result)
}

func TestDetectBMO(t *testing.T) {
	t.Parallel()

	cipher := bmo.New(
		bmo.WithClock(bmo.ClockFunc(func() time.Time { return time.UnixMilli(1700000123456) })),
		bmo.WithSaltSource(bmo.SaltFunc(func() (string, error) { return "c0ffee00", nil })),
	)

	for _, plain := range []string{"Secret message", "رسالة سرية", ""} {
		encoded, err := cipher.Encode(plain)
		require.NoError(t, err)

		report := newDetector(t, detect.WithCipher(cipher)).Detect(encoded)

		best, ok := report.Best()
		require.True(t, ok)
		assert.Equal(t, "bmo", best.Method)
		assert.Equal(t, detect.ConfidenceBMO, best.Confidence)
		assert.Equal(t, plain, best.Result)
	}
}

func TestDetectBMOWithDefaultCipher(t *testing.T) {
	t.Parallel()

	encoded, err := bmo.New().Encode("decoded without knowing the salt")
	require.NoError(t, err)

	best, ok := newDetector(t).Detect(encoded).Best()
	require.True(t, ok)
	assert.Equal(t, "bmo", best.Method)
	assert.Equal(t, "decoded without knowing the salt", best.Result)
}

func TestDetectBase64(t *testing.T) {
	t.Parallel()

	best, ok := newDetector(t).Detect("SGVsbG8gV29ybGQ=").Best()
	require.True(t, ok)
	assert.Equal(t, "base64", best.Method)
	assert.Equal(t, detect.ConfidenceBase64, best.Confidence)
	assert.Equal(t, "Hello World", best.Result)
}

func TestDetectBase64Arabic(t *testing.T) {
	t.Parallel()

	best, ok := newDetector(t).Detect("2YXYsdit2KjYpw==").Best()
	require.True(t, ok)
	assert.Equal(t, "base64", best.Method)
	assert.Equal(t, "مرحبا", best.Result)
}

func TestDetectBase64Binary(t *testing.T) {
	t.Parallel()

	// "AAEC" decodes to 0x00 0x01 0x02.
	for _, c := range newDetector(t).Detect("AAEC").Candidates {
		assert.NotEqual(t, "base64", c.Method)
	}
}

func TestDetectLOL(t *testing.T) {
	t.Parallel()

	report := newDetector(t).Detect("8-5-12-12-15")

	want := []detect.Candidate{
		{Method: "lol", Result: "hello", Confidence: 70},
		{Method: "reverse", Result: "51-21-21-5-8", Confidence: 40},
	}

	if diff := cmp.Diff(want, report.Candidates); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectUnrecognized(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "12321", "   "} {
		report := newDetector(t).Detect(in)

		assert.False(t, report.Recognized, "input %q", in)
		assert.Empty(t, report.Candidates)
		assert.Equal(t, detect.Unrecognized, report.Summary)

		_, ok := report.Best()
		assert.False(t, ok)
	}
}

func TestDetectArabicPlaintext(t *testing.T) {
	t.Parallel()

	report := newDetector(t).Detect("مرحبا بالعالم")

	want := []detect.Candidate{
		{Method: "reverse", Result: "ملاعلاب ابحرم", Confidence: 40},
	}

	if diff := cmp.Diff(want, report.Candidates); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectInvariants(t *testing.T) {
	t.Parallel()

	d := newDetector(t)

	inputs := []string{
		"Hello", "olleH", "Khoor", "SGVsbG8=", "1-2-3", "BMOxxxEND", "BMOEND",
		"wkh fdw lv rq wkh pdw", "aaaa", "!@#$", "zyx",
	}

	for _, in := range inputs {
		report := d.Detect(in)

		assert.Equal(t, report.Recognized, len(report.Candidates) > 0, "input %q", in)

		for i, c := range report.Candidates {
			assert.GreaterOrEqual(t, c.Confidence, 0)
			assert.LessOrEqual(t, c.Confidence, 100)

			if i > 0 {
				assert.GreaterOrEqual(t, report.Candidates[i-1].Confidence, c.Confidence, "input %q", in)
			}
		}

		assert.Equal(t, report, d.Detect(in), "detection must be deterministic for %q", in)
	}
}

func TestDetectCaesarTiesKeepShiftOrder(t *testing.T) {
	t.Parallel()

	// Shift 4 turns "wkh orqj" into "sgd knmf ... to", a second hit after the real shift 3.
	report := newDetector(t).Detect(codec.Shift(strings.Repeat("the long runner up ", 10), 3))

	var shifts []int

	for _, c := range report.Candidates {
		if c.Method == "caesar" {
			shifts = append(shifts, c.Shift)
		}
	}

	assert.Equal(t, []int{3, 4}, shifts)
}

type panicky struct{}

func (panicky) Name() string { return "panicky" }

func (panicky) Detect(string) []detect.Candidate { panic("boom") }

type overconfident struct{}

func (overconfident) Name() string { return "overconfident" }

func (overconfident) Detect(text string) []detect.Candidate {
	return []detect.Candidate{{Method: "overconfident", Result: text, Confidence: 250}}
}

func TestDetectStrategyIsolation(t *testing.T) {
	t.Parallel()

	d := newDetector(t, detect.WithStrategies(panicky{}, overconfident{}))

	assert.Equal(t,
		[]string{"bmo", "base64", "caesar", "atbash", "lol", "reverse", "panicky", "overconfident"},
		d.Strategies(),
	)

	report := d.Detect("Khoor")
	require.True(t, report.Recognized)

	best, _ := report.Best()
	assert.Equal(t, "overconfident", best.Method)
	assert.Equal(t, 100, best.Confidence)

	for _, c := range report.Candidates {
		assert.NotEqual(t, "panicky", c.Method)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("the long runner up ", 10)

	d := newDetector(t)

	report := d.Detect(codec.Shift(long, 3))
	require.True(t, report.Recognized)

	lines := strings.Split(report.Summary, "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	assert.Equal(t, "Method: caesar (shift 3)", lines[0])
	assert.Equal(t, "Confidence: 60%", lines[1])
	assert.Equal(t, "Result: "+long, lines[2])
	assert.Equal(t, "Alternatives:", lines[3])

	alternatives := lines[4:]
	assert.LessOrEqual(t, len(alternatives), detect.Alternatives)

	for _, alt := range alternatives {
		assert.True(t, strings.HasPrefix(alt, "  - "), alt)

		_, preview, found := strings.Cut(alt, "): ")
		require.True(t, found, alt)
		assert.LessOrEqual(t, len([]rune(preview)), detect.PreviewLength+len("..."))
	}

	assert.Equal(t, "  - caesar (shift 4) (60%): "+detect.Preview(codec.Shift(long, -1)), alternatives[0])
}

func TestPreview(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", detect.Preview("short"))
	assert.Equal(t, strings.Repeat("ب", 50)+"...", detect.Preview(strings.Repeat("ب", 60)))
	assert.Equal(t, strings.Repeat("x", 50), detect.Preview(strings.Repeat("x", 50)))
}

func TestLoadWords(t *testing.T) {
	t.Parallel()

	words, err := detect.LoadWords(filepath.Join("testdata", "words.jsonc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "Quartz"}, words.English)
	assert.Equal(t, []string{"لكن"}, words.Arabic)

	_, err = detect.LoadWords(filepath.Join("testdata", "missing.jsonc"))
	require.Error(t, err)

	merged := detect.DefaultWords().Merge(words)
	assert.Contains(t, merged.English, "quartz")
	assert.Contains(t, merged.Arabic, "لكن")
}

func TestWithWords(t *testing.T) {
	t.Parallel()

	input := codec.Shift("zebra", 7)

	for _, c := range newDetector(t).Detect(input).Candidates {
		assert.NotEqual(t, "caesar", c.Method, "zebra is not a built-in word")
	}

	words, err := detect.LoadWords(filepath.Join("testdata", "words.jsonc"))
	require.NoError(t, err)

	best, ok := newDetector(t, detect.WithWords(words)).Detect(input).Best()
	require.True(t, ok)
	assert.Equal(t, "caesar", best.Method)
	assert.Equal(t, 7, best.Shift)
	assert.Equal(t, "zebra", best.Result)
}
