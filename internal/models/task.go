package models

import "time"

// Task represents a single to-do item
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// IsPending reports whether the task has not been completed yet
func (t Task) IsPending() bool {
	return !t.Completed
}

// Clone returns a copy of the task that shares no pointers with the original
func (t Task) Clone() Task {
	c := t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	return c
}

// GetID returns the task identifier (used by quiet output mode)
func (t Task) GetID() string {
	return t.ID
}

// CloneTasks deep-copies a task slice. A nil input yields an empty, non-nil slice.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
