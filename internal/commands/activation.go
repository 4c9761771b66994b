package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gobmo/internal/logic"
)

// NewActivationCommand creates the activation command group.
func NewActivationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activation",
		Short: "Issue and check activation codes",
	}

	generate := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate new activation codes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := cmd.Flags().GetInt("count")
			if err != nil {
				return err
			}

			return logic.RunGenerate(cmd.OutOrStdout(), count)
		},
	}

	generate.Flags().IntP("count", "n", 1, "Number of codes to generate")

	validate := &cobra.Command{
		Use:   "validate CODE",
		Short: "Check that an activation code is well-formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return logic.RunValidate(cmd.OutOrStdout(), args[0])
		},
	}

	cmd.AddCommand(generate, validate)

	return cmd
}
