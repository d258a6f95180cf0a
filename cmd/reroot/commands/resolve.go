package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [packages...]",
		Short: "Print the packages the migration would unpack",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := configOptions(cmd)
			opts.Packages = append(opts.Packages, args...)
			return c.app.Resolve(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
	addConfigFlags(cmd)
	return cmd
}
