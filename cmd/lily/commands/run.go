package commands

import (
	"sort"

	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Patch the input tree and write the result to the output tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := c.app.Run(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Println(summary.String())

			written := make([]string, 0, len(summary.Written))
			for path := range summary.Written {
				written = append(written, path)
			}
			sort.Strings(written)
			for _, path := range written {
				cmd.Println(summary.Written[path] + "  " + path)
			}
			return nil
		},
	}
}
