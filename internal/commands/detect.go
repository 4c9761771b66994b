package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idelchi/gobmo/internal/codec"
	"github.com/idelchi/gobmo/internal/config"
)

// NewDetectCommand creates a new cobra command for the detect subcommand.
func NewDetectCommand(cfg *config.Config, log **zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "detect [flags] [text...]",
		Aliases: []string{"auto"},
		Short:   "Guess the cipher behind text and rank candidate decodings",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, codec.OpAuto),
		RunE:    run(cfg, log),
	}

	cmd.Flags().String("words", "", "JSONC file with extra function words ({\"english\": [...], \"arabic\": [...]})")
	cmd.Flags().String("code", "", "Activation code")
	cmd.Flags().String("code-file", "", "Path to a file containing the activation code")
	cmd.Flags().Bool("require-activation", false, "Refuse to detect without a well-formed activation code")

	return cmd
}
