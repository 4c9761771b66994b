package logic

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/gobmo/internal/codec"
)

// render writes a successful entry in the configured format.
func (r *Runner) render(e Entry, first bool) error {
	switch r.cfg.Format {
	case "json":
		enc := json.NewEncoder(r.stdout)
		enc.SetEscapeHTML(false)

		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	case "yaml":
		data, err := yaml.Marshal(e)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}

		fmt.Fprintf(r.stdout, "---\n%s", data)
	default:
		r.renderText(e, first)
	}

	return nil
}

func (r *Runner) renderText(e Entry, first bool) {
	if r.cfg.Operation != codec.OpAuto {
		if e.Target != "" {
			if !r.cfg.Quiet {
				fmt.Fprintf(r.stdout, "Processed %q -> %q\n", e.Source, e.Target)
			}

			return
		}

		fmt.Fprintln(r.stdout, e.Output)

		return
	}

	if !first {
		fmt.Fprintln(r.stdout)
	}

	if e.Source != "" {
		fmt.Fprintf(r.stdout, "%s:\n", e.Source)
	}

	if r.cfg.Quiet {
		fmt.Fprintln(r.stdout, e.Output)

		return
	}

	fmt.Fprintln(r.stdout, e.Report.Summary)
}
