package task

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/models"
)

func TestValidateTitle(t *testing.T) {
	title, err := ValidateTitle("  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", title)

	_, err = ValidateTitle("   ")
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = ValidateTitle(strings.Repeat("é", models.MaxTitleLength))
	assert.NoError(t, err)

	_, err = ValidateTitle(strings.Repeat("a", models.MaxTitleLength+1))
	assert.ErrorIs(t, err, ErrTitleTooLong)
}

func TestValidateTaskID(t *testing.T) {
	id, err := ValidateTaskID(" abc ")
	require.NoError(t, err)
	assert.Equal(t, "abc", id)

	_, err = ValidateTaskID("")
	assert.ErrorIs(t, err, ErrInvalidTaskID)
}

func TestSortPendingFirst_IsStable(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Completed: true},
		{ID: "2"},
		{ID: "3", Completed: true},
		{ID: "4"},
	}
	SortPendingFirst(tasks)

	var ids []string
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids)
}

func TestFilterTasks(t *testing.T) {
	tasks := []models.Task{{ID: "1", Completed: true}, {ID: "2"}}

	assert.Len(t, FilterTasks(tasks, FilterAll), 2)
	pending := FilterTasks(tasks, FilterPending)
	require.Len(t, pending, 1)
	assert.Equal(t, "2", pending[0].ID)
	completed := FilterTasks(tasks, FilterCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, "1", completed[0].ID)
	assert.NotNil(t, FilterTasks(nil, FilterAll))
}
