package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// AddOutputFlags registers the --json and --quiet flags every command accepts
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// ReadDescription returns value, or the whole of stdin when value is "-"
func ReadDescription(cmd *cobra.Command, value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// TaskIDArg returns the task id from the first positional argument or --id
func TaskIDArg(cmd *cobra.Command, args []string) (string, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else if cmd.Flags().Lookup("id") != nil {
		raw, _ = cmd.Flags().GetString("id")
	}
	return taskservice.ValidateTaskID(raw)
}

// ResolveTaskID expands a unique id prefix to the full task id
func ResolveTaskID(tasks []models.Task, idOrPrefix string) (string, bool) {
	for _, t := range tasks {
		if t.ID == idOrPrefix {
			return t.ID, true
		}
	}
	match := ""
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, idOrPrefix) {
			if match != "" {
				return "", false
			}
			match = t.ID
		}
	}
	return match, match != ""
}

// WriteFailed reports a storage write failure
func WriteFailed(f *OutputFormatter, code string, err error) error {
	return f.Fail(ExitError, code, err, "Check that the data directory is writable and try again")
}

// IsValidationError reports whether err came from input validation
func IsValidationError(err error) bool {
	return errors.Is(err, taskservice.ErrEmptyTitle) ||
		errors.Is(err, taskservice.ErrTitleTooLong) ||
		errors.Is(err, taskservice.ErrInvalidTaskID) ||
		errors.Is(err, models.ErrInvalidTheme)
}
