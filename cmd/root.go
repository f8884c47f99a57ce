package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/configure"
	"github.com/thenoetrevino/todo/internal/cli/task"
	"github.com/thenoetrevino/todo/internal/cli/theme"
)

// NewRootCmd builds the todo command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "todo - a small persistent task list",
		Long: `todo keeps a list of tasks and a light/dark theme preference
in a local key-value store (SQLite by default, or a JSON file).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Mirror log output to stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return cli.NewExitError(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(theme.ThemeCmd())
	rootCmd.AddCommand(configure.ConfigCmd())

	return rootCmd
}
