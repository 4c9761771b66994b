package logic

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/gobmo/internal/codec"
	"github.com/idelchi/gobmo/internal/fileutil"
)

// processFile transforms a whole file. Encode and decode write the result next to the
// input; detection only reports.
func (r *Runner) processFile(idx int, path string) Entry {
	entry := Entry{Source: path, index: idx, label: path}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		entry.err = fmt.Errorf("reading file: %w", err)

		return entry
	}

	entry.bytes = int64(len(data))

	method := r.cfg.ParsedMethod()
	text := string(data)

	// Envelopes and Base64 never contain line breaks; editors often append one.
	if r.cfg.Operation == codec.OpDecode && (method == codec.MethodBMO || method == codec.MethodBase64) {
		text = strings.TrimRight(text, "\r\n")
	}

	res := r.engine.Process(text, method, r.cfg.Operation)

	r.logResult(idx, res)

	res.Input = ""
	entry.Result = res

	if res.Error != nil {
		entry.err = res.Error

		return entry
	}

	if r.cfg.Operation == codec.OpAuto {
		return entry
	}

	out := r.outputPath(path)
	if filepath.Clean(out) == filepath.Clean(path) {
		entry.err = fmt.Errorf("%w: %q, set --decode-ext", ErrOverwrite, path)

		return entry
	}

	if _, err := fileutil.WriteAtomic(path, out, []byte(res.Output), r.cfg.PreserveTimestamps); err != nil {
		entry.err = err

		return entry
	}

	entry.Target = out
	entry.Output = ""

	return entry
}

// outputPath generates the output file path based on the input filename
// and the configured suffixes for encoding/decoding.
func (r *Runner) outputPath(filename string) string {
	ext := r.cfg.EncodeSuffix

	if r.cfg.Operation == codec.OpDecode {
		filename = strings.TrimSuffix(filename, r.cfg.EncodeSuffix)
		ext = r.cfg.DecodeSuffix
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}
