package logic

import (
	"fmt"
	"io"

	"github.com/idelchi/gobmo/internal/engine"
)

// RunGenerate prints count new activation codes.
func RunGenerate(w io.Writer, count int) error {
	eng, err := engine.New()
	if err != nil {
		return err
	}

	for range count {
		code, err := eng.GenerateActivationCode()
		if err != nil {
			return fmt.Errorf("generating activation code: %w", err)
		}

		fmt.Fprintln(w, code)
	}

	return nil
}

// RunValidate checks code and reports the verdict.
func RunValidate(w io.Writer, code string) error {
	eng, err := engine.New()
	if err != nil {
		return err
	}

	if !eng.ValidateActivationCode(code) {
		return fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}

	fmt.Fprintf(w, "%q is well-formed\n", code)

	return nil
}
