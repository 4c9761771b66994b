// Package logic runs the cipher engine over the configured inputs.
package logic

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gobmo/internal/codec"
	"github.com/idelchi/gobmo/internal/config"
	"github.com/idelchi/gobmo/internal/detect"
	"github.com/idelchi/gobmo/internal/engine"
	"github.com/idelchi/gobmo/internal/fileutil"
)

// Runner processes every input of a configuration with a bounded worker pool.
type Runner struct {
	cfg    *config.Config
	engine *engine.Engine
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// New builds a Runner, loading extra detector words and the activation code if configured.
func New(cfg *config.Config, log *zap.Logger, stdout, stderr io.Writer) (*Runner, error) {
	var opts []engine.Option

	if cfg.Words != "" {
		words, err := detect.LoadWords(cfg.Words)
		if err != nil {
			return nil, fmt.Errorf("loading words: %w", err)
		}

		opts = append(opts, engine.WithWords(words))
	}

	if cfg.RequireActivation {
		code, err := activationCode(cfg)
		if err != nil {
			return nil, err
		}

		opts = append(opts, engine.RequireActivation(code))
	}

	eng, err := engine.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{cfg: cfg, engine: eng, log: log, stdout: stdout, stderr: stderr}, nil
}

// Run is the main logic of the application.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger, stdout, stderr io.Writer) error {
	runner, err := New(cfg, log, stdout, stderr)
	if err != nil {
		return err
	}

	return runner.Run(ctx)
}

// Run processes all inputs. Results are printed in input order; failures are reported
// to stderr and the first one is returned after every input has been attempted.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()

	inputs, err := r.inputs()
	if err != nil {
		return err
	}

	entries := make(chan Entry, len(inputs))
	printed := make(chan tally)

	go func() {
		defer close(printed)

		printed <- r.print(entries)
	}()

	group := errgroup.Group{}
	group.SetLimit(r.cfg.Parallel)

	for idx, input := range inputs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				entries <- Entry{index: idx, label: label(r.cfg, input), err: err}

				return err
			}

			entry := r.process(idx, input)
			entries <- entry

			return entry.err
		})
	}

	err = group.Wait()

	close(entries)

	counts := <-printed // Wait for printer to finish

	if r.cfg.Stats {
		r.printStats(counts, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("processing inputs: %w", err)
	}

	return nil
}

// inputs returns the texts to process, or in file mode the collected file paths.
func (r *Runner) inputs() ([]string, error) {
	if !r.cfg.Files {
		return r.cfg.Inputs, nil
	}

	excludes := r.cfg.Exclude

	if r.cfg.ExcludeFrom != "" {
		patterns, err := fileutil.LoadPatterns(r.cfg.ExcludeFrom)
		if err != nil {
			return nil, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(slices.Clone(excludes), patterns...)
	}

	files, err := fileutil.Collect(r.cfg.Inputs, excludes)
	if err != nil {
		return nil, fmt.Errorf("collecting files: %w", err)
	}

	r.log.Debug("collected files", zap.Int("files", len(files)), zap.Strings("excludes", excludes))

	return files, nil
}

func (r *Runner) process(idx int, input string) Entry {
	if r.cfg.Files {
		return r.processFile(idx, input)
	}

	res := r.engine.Process(input, r.cfg.ParsedMethod(), r.cfg.Operation)

	r.logResult(idx, res)

	return Entry{
		Result: res,
		index:  idx,
		label:  label(r.cfg, input),
		bytes:  int64(len(input)),
		err:    res.Error,
	}
}

func (r *Runner) logResult(idx int, res engine.Result) {
	fields := []zap.Field{
		zap.Int("index", idx),
		zap.String("operation", string(res.Operation)),
		zap.String("method", string(res.Method)),
		zap.Int("bytes", len(res.Input)),
	}

	if res.Error != nil {
		r.log.Warn("input failed", append(fields, zap.Error(res.Error))...)

		return
	}

	if res.Report != nil {
		fields = append(fields, zap.Int("candidates", len(res.Report.Candidates)))
	}

	r.log.Debug("input processed", fields...)
}

// tally counts what the printer has seen.
type tally struct {
	inputs    int
	processed int
	errored   int
	size      int64
}

// print drains entries and writes them in input order.
func (r *Runner) print(entries <-chan Entry) tally {
	var counts tally

	pending := make(map[int]Entry)
	next := 0

	for entry := range entries {
		pending[entry.index] = entry

		for {
			e, ok := pending[next]
			if !ok {
				break
			}

			delete(pending, next)
			next++

			r.emit(e, &counts)
		}
	}

	return counts
}

func (r *Runner) emit(e Entry, counts *tally) {
	counts.inputs++

	if e.err != nil {
		counts.errored++

		fmt.Fprintf(r.stderr, "Error processing %q: %v\n", e.label, e.err)

		return
	}

	counts.processed++
	counts.size += e.bytes

	if err := r.render(e, counts.processed == 1); err != nil {
		r.log.Error("writing output", zap.Error(err))
	}

	if r.cfg.Delete && e.Source != "" && r.cfg.Operation != codec.OpAuto {
		if err := os.Remove(e.Source); err != nil {
			fmt.Fprintf(r.stderr, "Error deleting %q: %v\n", e.Source, err)
		} else if !r.cfg.Quiet {
			fmt.Fprintf(r.stdout, "Deleted %q\n", e.Source)
		}
	}
}

func (r *Runner) printStats(counts tally, duration time.Duration) {
	fmt.Fprintf(r.stderr, "\nStats\n")
	fmt.Fprintf(r.stderr, "  Inputs:    %d\n", counts.inputs)
	fmt.Fprintf(r.stderr, "  Processed: %d\n", counts.processed)
	fmt.Fprintf(r.stderr, "  Errors:    %d\n", counts.errored)
	//nolint:gosec // size is always non-negative (sum of input sizes)
	fmt.Fprintf(r.stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, counts.size))))
	fmt.Fprintf(r.stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}

// label names an input in diagnostics.
func label(cfg *config.Config, input string) string {
	if cfg.Files {
		return input
	}

	return detect.Preview(input)
}

func activationCode(cfg *config.Config) (string, error) {
	switch {
	case cfg.Code != "":
		return cfg.Code, nil
	case cfg.CodeFile != "":
		data, err := os.ReadFile(cfg.CodeFile)
		if err != nil {
			return "", fmt.Errorf("reading code file: %w", err)
		}

		return strings.TrimSpace(string(data)), nil
	default:
		return "", ErrNoActivationCode
	}
}
