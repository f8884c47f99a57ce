package task

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Long:    "Delete a task by ID (requires confirmation unless --force, --json or --quiet).",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runDelete,
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	task, err := findTask(ctx, cmd, args, cliInstance, formatter)
	if err != nil {
		return err
	}

	// Ask for confirmation unless forced or in a machine-readable mode
	if !force && !formatter.Quiet && !formatter.JSON {
		if !confirm(cmd, fmt.Sprintf("Delete task %s: '%s'? (y/N): ", styles.ShortID(task.ID), task.Title)) {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if _, err := cliInstance.App.TaskService.DeleteTask(ctx, task.ID); err != nil {
		return cli.WriteFailed(formatter, "DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]string{"task_id": task.ID})
	}

	formatter.Printf("%s Task %s deleted\n", styles.SuccessStyle.Render("✓"), styles.ShortID(task.ID))
	return nil
}

// confirm prints prompt and reads a y/yes answer from the command's input
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
