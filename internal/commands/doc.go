// Package commands provides the command-line interface for the gobmo tool.
//
// It implements commands for:
//   - encoding and decoding with a named cipher method
//   - detecting the cipher behind a string
//   - issuing and checking activation codes
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idelchi/gobmo/internal/codec"
	"github.com/idelchi/gobmo/internal/config"
	"github.com/idelchi/gobmo/internal/logic"
	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gogen/pkg/stdin"
)

// preRun returns a PreRunE handler that resolves the inputs and operation into cfg
// and validates the configuration.
func preRun(cfg *config.Config, op codec.Operation) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		inputs, err := readInputs(args)
		if err != nil {
			return err
		}

		cfg.Operation = op
		cfg.Inputs = inputs

		return cobraext.Validate(cfg, cfg)
	}
}

// run returns a RunE handler that processes the configured inputs.
func run(cfg *config.Config, log **zap.Logger) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return logic.Run(cmd.Context(), cfg, *log, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
}

// readInputs returns the positional arguments or, when there are none,
// the non-empty lines piped to stdin.
func readInputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if !stdin.IsPiped() {
		return nil, nil
	}

	data, err := stdin.Read()
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	var lines []string

	for _, line := range strings.Split(data, "\n") {
		if line = strings.TrimSuffix(line, "\r"); line != "" {
			lines = append(lines, line)
		}
	}

	return lines, nil
}
