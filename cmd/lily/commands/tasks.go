package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the registered tasks and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos, err := c.app.TaskCatalog()
			if err != nil {
				return err
			}
			for _, info := range infos {
				line := info.Name
				if len(info.Required) > 0 {
					line += "  required: " + strings.Join(info.Required, ", ")
				}
				if len(info.Optional) > 0 {
					line += "  optional: " + strings.Join(info.Optional, ", ")
				}
				cmd.Println(line)
			}
			return nil
		},
	}
}
