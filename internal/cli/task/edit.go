package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit [id]",
		Aliases: []string{"update"},
		Short:   "Edit a task",
		Long: `Change the title, description or completion state of a task.
Only the flags given are changed; everything else is kept.

Examples:
  todo task edit 0f8fad5b --title="Buy oat milk"
  todo task edit 0f8fad5b --description=- < notes.md
  todo task edit 0f8fad5b --completed=false
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().Bool("completed", false, "Mark completed (true) or pending (false)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	var req taskservice.UpdateTaskRequest

	if cmd.Flags().Changed("title") {
		rawTitle, _ := cmd.Flags().GetString("title")
		title, err := taskservice.ValidateTitle(rawTitle)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_TITLE", err, "Provide a non-empty title of at most 255 characters")
		}
		req.Title = &title
	}
	if cmd.Flags().Changed("description") {
		rawDescription, _ := cmd.Flags().GetString("description")
		description, err := cli.ReadDescription(cmd, rawDescription)
		if err != nil {
			return formatter.Fail(cli.ExitDataErr, "STDIN_READ_ERROR", err, "")
		}
		req.Description = &description
	}
	if cmd.Flags().Changed("completed") {
		completed, _ := cmd.Flags().GetBool("completed")
		req.Completed = &completed
	}

	if req.IsEmpty() {
		return formatter.Fail(cli.ExitUsage, "NO_UPDATES", errors.New("no fields to update"),
			"Pass at least one of --title, --description or --completed")
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	task, err := findTask(ctx, cmd, args, cliInstance, formatter)
	if err != nil {
		return err
	}
	req.ID = task.ID

	tasks, err := cliInstance.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
		return cli.WriteFailed(formatter, "TASK_UPDATE_ERROR", err)
	}

	updated, ok := taskByID(tasks, task.ID)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND", fmt.Errorf("task %s not found", task.ID), "")
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(updated)
	}

	formatter.Printf("%s Task %s updated\n", styles.SuccessStyle.Render("✓"), styles.ShortID(updated.ID))
	return nil
}
