package task

import (
	"slices"

	"github.com/thenoetrevino/todo/internal/models"
)

// SortPendingFirst stably reorders tasks so pending ones come before completed
// ones, keeping stored order within each group. The slice is sorted in place.
func SortPendingFirst(tasks []models.Task) {
	slices.SortStableFunc(tasks, func(a, b models.Task) int {
		switch {
		case a.Completed == b.Completed:
			return 0
		case !a.Completed:
			return -1
		default:
			return 1
		}
	})
}

// FilterTasks returns the tasks matching the completion filter, preserving order
func FilterTasks(tasks []models.Task, filter Filter) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		switch filter {
		case FilterPending:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// Filter selects tasks by completion state
type Filter int

const (
	FilterAll Filter = iota
	FilterPending
	FilterCompleted
)
