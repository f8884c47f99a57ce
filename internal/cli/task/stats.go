package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
)

// StatsCmd returns the task stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count pending and completed tasks",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	stats := cliInstance.App.TaskService.Stats(ctx)

	if formatter.Quiet {
		_, err := fmt.Fprintf(formatter.Out, "%d/%d\n", stats.Completed, stats.Total)
		return err
	}
	if formatter.JSON {
		return formatter.Success(stats)
	}

	formatter.Printf("%d tasks: %d pending, %d completed\n", stats.Total, stats.Pending, stats.Completed)
	return nil
}
