package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPhaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phase",
		Short: "Print the migration phase this process would run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.DescribePhase(cmd.OutOrStdout())
		},
	}
}
