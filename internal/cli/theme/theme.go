package theme

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
)

// ThemeCmd returns the theme parent command
func ThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the light/dark theme preference",
	}

	cmd.AddCommand(GetCmd())
	cmd.AddCommand(SetCmd())
	cmd.AddCommand(ToggleCmd())

	return cmd
}

type themeResult struct {
	Theme models.Theme `json:"theme"`
}

func (r themeResult) GetID() string {
	return r.Theme.String()
}

func report(formatter *cli.OutputFormatter, theme models.Theme, verb string) error {
	if formatter.Quiet || formatter.JSON {
		return formatter.Success(themeResult{Theme: theme})
	}
	styles.Init(theme)
	formatter.Printf("%s %s\n", verb, styles.LabelStyle.Render(theme.String()))
	return nil
}

// GetCmd returns the theme get subcommand
func GetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the current theme (dark when unset)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)
			cliInstance, err := cli.Open(cmd, formatter)
			if err != nil {
				return err
			}
			defer cli.CloseQuietly(cliInstance)

			theme := cliInstance.App.TaskService.GetThemePreference(cmd.Context())
			return report(formatter, theme, "Theme:")
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// SetCmd returns the theme set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Set the theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(models.ThemeLight), string(models.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			theme, err := models.ParseTheme(args[0])
			if err != nil {
				return formatter.Fail(cli.ExitValidation, "INVALID_THEME", err, "Valid themes are: light, dark")
			}

			cliInstance, err := cli.Open(cmd, formatter)
			if err != nil {
				return err
			}
			defer cli.CloseQuietly(cliInstance)

			if err := cliInstance.App.TaskService.SetThemePreference(cmd.Context(), theme); err != nil {
				return cli.WriteFailed(formatter, "THEME_SAVE_ERROR", err)
			}
			return report(formatter, theme, "✓ Theme set to")
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// ToggleCmd returns the theme toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)
			cliInstance, err := cli.Open(cmd, formatter)
			if err != nil {
				return err
			}
			defer cli.CloseQuietly(cliInstance)

			theme, err := cliInstance.App.TaskService.ToggleTheme(cmd.Context())
			if err != nil {
				return cli.WriteFailed(formatter, "THEME_SAVE_ERROR", err)
			}
			return report(formatter, theme, "✓ Theme switched to")
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}
