// Command gobmo encodes, decodes and detects text ciphers.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/idelchi/gobmo/internal/commands"
	"github.com/idelchi/gobmo/internal/config"
	"github.com/idelchi/gogen/pkg/cobraext"
)

// Global variable for CI stamping.
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := run(); err != nil {
		if errors.Is(err, cobraext.ErrExitGracefully) {
			return
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var cfg config.Config

	return commands.NewRootCommand(&cfg, version).ExecuteContext(ctx)
}
