package task

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task. The description is rendered as markdown in the current theme.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(task)
	}

	theme := cliInstance.App.TaskService.GetThemePreference(ctx)
	styles.Init(theme)
	formatter.Printf("%s\n", styles.RenderCard(renderDetail(task, theme)))
	return nil
}

func renderDetail(task models.Task, theme models.Theme) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(task.Title))
	content.WriteString("\n\n")

	status := "pending"
	if task.Completed {
		status = "completed"
	}

	rows := [][2]string{
		{"ID:", task.ID},
		{"Status:", status},
	}
	if !task.CreatedAt.IsZero() {
		rows = append(rows, [2]string{"Created:", task.CreatedAt.Local().Format(time.DateTime)})
	}
	if task.CompletedAt != nil {
		rows = append(rows, [2]string{"Completed:", task.CompletedAt.Local().Format(time.DateTime)})
	}
	for _, row := range rows {
		content.WriteString(styles.LabelStyle.Render(row[0]))
		content.WriteString(" ")
		content.WriteString(styles.ValueStyle.Render(row[1]))
		content.WriteString("\n")
	}

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(renderDescription(task.Description, theme))

	return content.String()
}

// Cache Glamour renderers by theme to avoid expensive re-creation
var rendererCache sync.Map // map[models.Theme]*glamour.TermRenderer

func getRenderer(theme models.Theme) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(theme); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.String()),
		glamour.WithWordWrap(styles.CardWidth-8),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(theme, renderer)
	return renderer, nil
}

func renderDescription(description string, theme models.Theme) string {
	if strings.TrimSpace(description) == "" {
		return styles.SubtitleStyle.Italic(true).Render("No description")
	}

	renderer, err := getRenderer(theme)
	if err == nil {
		rendered, err := renderer.Render(description)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return description
}
