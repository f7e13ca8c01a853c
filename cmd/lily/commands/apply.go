package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: "Apply patches to a single file's content in memory and print the result",
		Long: "Apply runs the given patch sources against the content of one file " +
			"(or stdin when no file is given) without touching the input or output trees.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patches, err := cmd.Flags().GetStringArray("patch")
			if err != nil {
				return err
			}

			var content []byte
			if len(args) == 1 && args[0] != "-" {
				content, err = os.ReadFile(args[0]) //nolint:gosec // user-provided path
			} else {
				content, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			result, err := c.app.ApplyContent(cmd.Context(), string(content), patches)
			if err != nil {
				return err
			}
			cmd.Print(result)
			return nil
		},
	}
	cmd.Flags().StringArrayP("patch", "p", nil, "Patch source file (repeatable, registration order)")
	return cmd
}
