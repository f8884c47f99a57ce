package task

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/thenoetrevino/todo/internal/models"
)

//go:embed task_schema.json
var taskSchemaJSON string

var taskSchema = jsonschema.MustCompileString("task_schema.json", taskSchemaJSON)

// decodeTasks parses the stored blob. Entries repeating an earlier id are dropped.
func decodeTasks(raw string, logger *slog.Logger) ([]models.Task, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptTasks, err)
	}
	if err := taskSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptTasks, err)
	}

	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptTasks, err)
	}

	seen := make(map[string]struct{}, len(tasks))
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			logger.Warn("dropping task with duplicate id", "id", t.ID)
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}

func encodeTasks(tasks []models.Task) (string, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("failed to encode tasks: %w", err)
	}
	return string(data), nil
}

// decodeTheme accepts both the plain form (dark) and a JSON string ("dark")
func decodeTheme(raw string) (models.Theme, error) {
	value := strings.TrimSpace(raw)
	if strings.HasPrefix(value, `"`) {
		var s string
		if err := json.Unmarshal([]byte(value), &s); err != nil {
			return "", fmt.Errorf("%w: %w", ErrCorruptTheme, err)
		}
		value = s
	}

	theme := models.Theme(value)
	if !theme.Valid() {
		return "", fmt.Errorf("%w: %q", ErrCorruptTheme, raw)
	}
	return theme, nil
}
