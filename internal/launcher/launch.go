package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/thenoetrevino/todo/cmd"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/logging"
)

// Launch runs the todo command line with args and returns the process exit code
func Launch(args []string) int {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load .env: %v\n", err)
		return cli.ExitDataErr
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		return cli.ExitDataErr
	}

	// Initialize logging to file before running any command
	verbose := slices.Contains(args, "--verbose") || slices.Contains(args, "-v")
	logOpts := logging.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Console: verbose || cfg.Logging.Console,
	}
	if dataDir, err := config.DataDir(); err == nil {
		logOpts.Dir = filepath.Join(dataDir, "logs")
	}
	if err := logging.Init(logOpts); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer func() {
		if err := logging.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
	}()

	root := cmd.NewRootCmd()
	root.SetArgs(args)

	err = root.ExecuteContext(cli.WithConfig(ctx, cfg))
	if err == nil {
		return cli.ExitSuccess
	}

	var exitErr *cli.CodedExit
	if errors.As(err, &exitErr) {
		slog.Debug("command failed", "code", exitErr.Code, "error", exitErr.Err)
		return exitErr.Code
	}

	// unknown commands and argument count errors come straight from cobra
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", root.Name())
	return cli.ExitUsage
}
