package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idelchi/gobmo/internal/codec"
	"github.com/idelchi/gobmo/internal/config"
)

// NewEncodeCommand creates a new cobra command for the encode subcommand.
func NewEncodeCommand(cfg *config.Config, log **zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encode [flags] [text...]",
		Aliases: []string{"enc"},
		Short:   "Encode text with a cipher method",
		Long: `Encode each argument, or each line of standard input when no arguments are given.
With --files, arguments are paths and every file is written to <file><encode-ext>.`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, codec.OpEncode),
		RunE:    run(cfg, log),
	}

	cmd.Flags().StringP("method", "m", string(codec.MethodCaesar), "Cipher method: "+methodList())

	return cmd
}
