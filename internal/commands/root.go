package commands

import (
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/idelchi/gobmo/internal/config"
	"github.com/idelchi/gogen/pkg/cobraext"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	log := zap.NewNop()

	root := cobraext.NewDefaultRootCommand(version, func(cmd *cobra.Command, _ []string) error {
		log = newLogger(cmd.ErrOrStderr(), viper.GetBool("verbose"))

		return nil
	})

	root.Use = "gobmo [flags] command [flags]"
	root.Short = "Text cipher toolkit"
	root.Long = `A text cipher toolkit with classic transforms (caesar, atbash, reverse, base64),
the salted and timestamped BMO cipher, and a detector that guesses how a string was encoded.`

	root.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = log.Sync()
	}

	root.PersistentFlags().BoolP("show", "s", false, "Show the configuration and exit")
	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-result output")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log every processed input")
	root.PersistentFlags().Bool("stats", false, "Print statistics to stderr when done")
	root.PersistentFlags().StringP("format", "o", "text", "Output format: text, json or yaml")

	root.PersistentFlags().Bool("files", false, "Treat arguments as files and process their contents")
	root.PersistentFlags().Bool("delete", false, "Delete the original file after successful encoding/decoding")
	root.PersistentFlags().Bool("preserve-timestamps", false, "Copy modification times to written files")
	root.PersistentFlags().String("encode-ext", ".bmo", "Suffix to append to encoded files")
	root.PersistentFlags().String("decode-ext", "", "Suffix to append to decoded files, after stripping the encoded suffix")
	root.PersistentFlags().StringSliceP("exclude", "e", nil, "Skip files in walked directories matching these find -path patterns")
	root.PersistentFlags().String("exclude-from", "", "JSONC file with an array of exclude patterns")

	root.AddCommand(
		NewEncodeCommand(cfg, &log),
		NewDecodeCommand(cfg, &log),
		NewDetectCommand(cfg, &log),
		NewActivationCommand(),
		NewMethodsCommand(),
	)

	return root
}

// newLogger writes warnings, or everything when verbose, to w.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoder := zap.NewProductionEncoderConfig()
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoder), zapcore.AddSync(w), level)

	return zap.New(core)
}
