package configure

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/config"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(PathCmd())
	cmd.AddCommand(InitCmd())

	return cmd
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the config file is read from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return cli.NewExitError(cli.ExitError, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)
			force, _ := cmd.Flags().GetBool("force")

			path, err := config.Path()
			if err != nil {
				return formatter.Fail(cli.ExitError, "CONFIG_PATH_ERROR", err, "")
			}

			if _, err := os.Stat(path); err == nil && !force {
				return formatter.Fail(cli.ExitUsage, "CONFIG_EXISTS",
					errors.New("config file already exists: "+path),
					"Use --force to overwrite it")
			}

			if err := config.Default().Save(); err != nil {
				return formatter.Fail(cli.ExitError, "CONFIG_WRITE_ERROR", err, "")
			}

			if formatter.Quiet || formatter.JSON {
				return formatter.Success(map[string]string{"path": path})
			}
			formatter.Printf("✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd)

	return cmd
}
