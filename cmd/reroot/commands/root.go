// Package commands implements the CLI commands for reroot.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/reroot/internal/adapters/config"
	"go.trai.ch/reroot/internal/app"
	"go.trai.ch/reroot/internal/build"
)

// CLI represents the command line interface for reroot.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "reroot",
		Short:         "Replace the running Debian system with Arch Linux in place",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newMigrateCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newPhaseCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// addConfigFlags registers the flags that override the configuration file.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", config.DefaultPath, "Path to configuration file")
	cmd.Flags().String("mirror", "", "Base URL of the package mirror")
	cmd.Flags().StringArrayP("package", "p", nil, "Additional package to install (repeatable)")
	cmd.Flags().String("work-dir", "", "Directory for the repository index and downloaded packages")
}

func configOptions(cmd *cobra.Command) app.ConfigOptions {
	path, _ := cmd.Flags().GetString("config")
	mirror, _ := cmd.Flags().GetString("mirror")
	packages, _ := cmd.Flags().GetStringArray("package")
	workDir, _ := cmd.Flags().GetString("work-dir")
	return app.ConfigOptions{
		Path:     path,
		Mirror:   mirror,
		Packages: packages,
		WorkDir:  workDir,
	}
}
