package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// ToggleCmd returns the task toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "toggle [id]",
		Aliases: []string{"done"},
		Short:   "Toggle a task between pending and completed",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runToggle,
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runToggle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	task, err := findTask(ctx, cmd, args, cliInstance, formatter)
	if err != nil {
		return err
	}

	tasks, err := cliInstance.App.TaskService.ToggleCompletion(ctx, task.ID)
	if err != nil {
		return cli.WriteFailed(formatter, "TASK_TOGGLE_ERROR", err)
	}

	toggled, ok := taskByID(tasks, task.ID)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND", fmt.Errorf("task %s not found", task.ID), "")
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(toggled)
	}

	state := "pending"
	if toggled.Completed {
		state = "completed"
	}
	formatter.Printf("%s %s '%s' is now %s\n",
		styles.Checkbox(toggled.Completed), styles.ShortID(toggled.ID), toggled.Title, state)
	return nil
}
