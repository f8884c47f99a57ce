package task

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"create"},
		Short:   "Create a new task",
		Long: `Create a new pending task.

Examples:
  # Simple task (human-readable output)
  todo task add --title="Buy milk"

  # Description from stdin
  echo "two litres" | todo task add --title="Buy milk" --description=-

  # Quiet mode for bash capture
  TASK_ID=$(todo task add --title="Buy milk" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("description", "", "Task description (use - for stdin)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	rawTitle, _ := cmd.Flags().GetString("title")
	rawDescription, _ := cmd.Flags().GetString("description")

	title, err := taskservice.ValidateTitle(rawTitle)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_TITLE", err, "Provide a non-empty title of at most 255 characters")
	}

	description, err := cli.ReadDescription(cmd, rawDescription)
	if err != nil {
		return formatter.Fail(cli.ExitDataErr, "STDIN_READ_ERROR", err, "")
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	tasks, err := cliInstance.App.TaskService.CreateTask(ctx, title, description)
	if err != nil {
		return cli.WriteFailed(formatter, "TASK_CREATE_ERROR", err)
	}

	created := createdTask(tasks, cliInstance.App.TaskService.InsertOrder())

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(created)
	}

	formatter.Printf("%s Task '%s' created (ID: %s)\n",
		styles.SuccessStyle.Render("✓"), created.Title, styles.ShortID(created.ID))
	return nil
}

// createdTask picks the new task out of the collection CreateTask returned
func createdTask(tasks []models.Task, order models.InsertOrder) models.Task {
	if len(tasks) == 0 {
		return models.Task{}
	}
	if order == models.InsertPrepend {
		return tasks[0]
	}
	return tasks[len(tasks)-1]
}
