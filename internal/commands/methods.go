package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idelchi/gobmo/internal/codec"
)

// NewMethodsCommand creates a command listing the cipher methods.
func NewMethodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the available cipher methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, m := range codec.Methods() {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}

			return nil
		},
	}
}

func methodList() string {
	methods := codec.Methods()
	names := make([]string, len(methods))

	for i, m := range methods {
		names[i] = string(m)
	}

	return strings.Join(names, ", ")
}
