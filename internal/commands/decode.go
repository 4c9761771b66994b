package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idelchi/gobmo/internal/codec"
	"github.com/idelchi/gobmo/internal/config"
)

// NewDecodeCommand creates a new cobra command for the decode subcommand.
func NewDecodeCommand(cfg *config.Config, log **zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decode [flags] [text...]",
		Aliases: []string{"dec"},
		Short:   "Decode text with a cipher method",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, codec.OpDecode),
		RunE:    run(cfg, log),
	}

	cmd.Flags().StringP("method", "m", string(codec.MethodCaesar), "Cipher method: "+methodList())

	return cmd
}
