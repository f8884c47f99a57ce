package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long:    "List tasks, pending ones first. Completed tasks are included unless --pending is given.",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}

	cmd.Flags().Bool("all", false, "Show pending and completed tasks (default)")
	cmd.Flags().Bool("pending", false, "Show only pending tasks")
	cmd.Flags().Bool("completed", false, "Show only completed tasks")
	cmd.MarkFlagsMutuallyExclusive("all", "pending", "completed")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	filter := taskservice.FilterAll
	if pending, _ := cmd.Flags().GetBool("pending"); pending {
		filter = taskservice.FilterPending
	}
	if completed, _ := cmd.Flags().GetBool("completed"); completed {
		filter = taskservice.FilterCompleted
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	tasks := taskservice.FilterTasks(cliInstance.App.TaskService.ListTasks(ctx), filter)
	taskservice.SortPendingFirst(tasks)

	if formatter.Quiet {
		for _, t := range tasks {
			fmt.Fprintln(formatter.Out, t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(tasks)
	}

	if len(tasks) == 0 {
		formatter.Printf("No tasks found\n")
		return nil
	}

	styles.Init(cliInstance.App.TaskService.GetThemePreference(ctx))
	for _, t := range tasks {
		formatter.Printf("%s\n", renderListLine(t))
	}
	return nil
}

func renderListLine(t models.Task) string {
	title := styles.ValueStyle.Render(t.Title)
	if t.Completed {
		title = styles.SubtitleStyle.Render(t.Title)
	}
	return fmt.Sprintf("%s %s  %s",
		styles.Checkbox(t.Completed),
		styles.LabelStyle.Render(styles.ShortID(t.ID)),
		title)
}
