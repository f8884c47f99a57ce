package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/models"
)

// findTask resolves the id argument (full id or unique prefix) to a stored task
func findTask(ctx context.Context, cmd *cobra.Command, args []string, cliInstance *cli.CLI, f *cli.OutputFormatter) (models.Task, error) {
	id, err := cli.TaskIDArg(cmd, args)
	if err != nil {
		return models.Task{}, f.Fail(cli.ExitUsage, "INVALID_TASK_ID", err,
			fmt.Sprintf("Usage: todo task %s <id>", cmd.Name()))
	}

	tasks := cliInstance.App.TaskService.ListTasks(ctx)
	fullID, ok := cli.ResolveTaskID(tasks, id)
	if !ok {
		return models.Task{}, f.Fail(cli.ExitNotFound, "TASK_NOT_FOUND",
			fmt.Errorf("task %s not found", id),
			"Use 'todo task list' to see task IDs (a unique prefix is enough)")
	}

	task, ok := cliInstance.App.TaskService.GetTask(ctx, fullID)
	if !ok {
		return models.Task{}, f.Fail(cli.ExitNotFound, "TASK_NOT_FOUND",
			fmt.Errorf("task %s not found", id), "")
	}
	return task, nil
}

// taskByID picks id out of a collection returned by a write
func taskByID(tasks []models.Task, id string) (models.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}
