package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/herd/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <task>[:arg,key=value,...] [task...]",
		Short: "Run tasks in order",
		Long: "Run tasks in order against one session, e.g.\n\n" +
			"  herd run connect:alice herd:web bootstrap:shell=false\n\n" +
			"Arguments are positional or key=value; escape a literal comma as \\,.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Run(cmd.Context(), args, app.RunOptions{SettingsPath: settingsPath(cmd)})
		},
	}
}
