package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Stage Arch Linux, install reroot as init and reboot",
		Long: `Stage Arch Linux in /archroot, install reroot as /sbin/init and reboot.

After the reboot reroot enters the staged root, moves the old system to /oldroot
and hard-links the new one into place. There is no automatic rollback.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Migrate(cmd.Context(), configOptions(cmd))
		},
	}
	addConfigFlags(cmd)
	return cmd
}
