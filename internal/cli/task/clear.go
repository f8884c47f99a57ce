package task

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// ClearCmd returns the task clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every task and the theme preference",
		Args:  cobra.NoArgs,
		RunE:  runClear,
	}

	cmd.Flags().Bool("yes", false, "Confirm clearing the store (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		return formatter.Fail(cli.ExitUsage, "CONFIRMATION_REQUIRED",
			errors.New("refusing to clear the store without --yes"),
			"Run 'todo task clear --yes' to remove all tasks")
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	removed := len(cliInstance.App.TaskService.ListTasks(ctx))
	if err := cliInstance.App.TaskService.Clear(ctx); err != nil {
		return cli.WriteFailed(formatter, "CLEAR_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]int{"removed": removed})
	}

	formatter.Printf("%s Removed %d task(s)\n", styles.SuccessStyle.Render("✓"), removed)
	return nil
}
