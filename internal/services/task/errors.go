package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("task title cannot be empty")
	ErrTitleTooLong  = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID = errors.New("invalid task ID")

	// Storage errors
	ErrWriteFailed = errors.New("failed to persist changes")
)

// Read errors. These never reach callers of Service; they are logged and the
// operation degrades to an empty collection or the default theme.
var (
	// ErrCorruptTasks indicates the stored task blob is not valid JSON or fails schema validation
	ErrCorruptTasks = errors.New("stored tasks are corrupt")

	// ErrCorruptTheme indicates the stored theme is not light or dark
	ErrCorruptTheme = errors.New("stored theme is invalid")
)
