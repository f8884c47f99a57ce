package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage write failures, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: unreadable stdin, configuration that cannot be parsed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty or overlong titles, unknown theme values.
	ExitValidation = 5
)

// CodedExit carries the process exit code for a failed command.
// The message has already been reported to the user when it is returned.
type CodedExit struct {
	Code int
	Err  error
}

func (e *CodedExit) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CodedExit) Unwrap() error {
	return e.Err
}

// NewExitError wraps err with an exit code
func NewExitError(code int, err error) *CodedExit {
	return &CodedExit{Code: code, Err: err}
}

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodedExit
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
