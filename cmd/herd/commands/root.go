// Package commands implements the CLI commands for herd.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/herd/internal/app"
	"go.trai.ch/herd/internal/build"
	"go.trai.ch/herd/internal/core/domain"
)

// CLI represents the command line interface for herd.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, tokens []string, opts app.RunOptions) error
	List(w io.Writer) error
	Init(path string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "herd",
		Short:         "Bring up and tend a salt-managed fleet of cloud servers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.NoArgs,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("settings", "s", domain.SettingsFileName, "Path to the settings file")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")
	rootCmd.Flags().BoolP("list", "l", false, "List available tasks")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			return c.app.List(cmd.OutOrStdout())
		}
		return cmd.Help()
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newInitCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetJSONHook calls fn with the value of the --json flag before any command runs.
func (c *CLI) SetJSONHook(fn func(bool)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		enable, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		fn(enable)
		return nil
	}
}

func settingsPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("settings")
	return path
}
