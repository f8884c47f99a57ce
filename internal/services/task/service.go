package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/events"
	"github.com/thenoetrevino/todo/internal/models"
)

// Service defines all task and theme operations.
//
// Reads never fail: an absent or unreadable value degrades to an empty
// collection or the default theme and is logged. Writes return an error
// wrapping ErrWriteFailed. Operations on a missing task id are no-ops.
type Service interface {
	// Read operations
	ListTasks(ctx context.Context) []models.Task
	GetTask(ctx context.Context, id string) (models.Task, bool)
	GetThemePreference(ctx context.Context) models.Theme
	Stats(ctx context.Context) Stats
	InsertOrder() models.InsertOrder

	// Write operations
	CreateTask(ctx context.Context, title, description string) ([]models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) ([]models.Task, error)
	ToggleCompletion(ctx context.Context, id string) ([]models.Task, error)
	DeleteTask(ctx context.Context, id string) ([]models.Task, error)
	SetThemePreference(ctx context.Context, theme models.Theme) error
	ToggleTheme(ctx context.Context) (models.Theme, error)
	Clear(ctx context.Context) error
}

// UpdateTaskRequest encapsulates a partial update of one task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	ID          string
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the request changes no field
func (r UpdateTaskRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Completed == nil
}

// Stats summarises the collection
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// service implements Service on top of a key-value store
type service struct {
	kv database.KVStore

	// mu serialises read-modify-write cycles so concurrent mutations
	// never overwrite each other's results
	mu sync.Mutex

	tasksKey    string
	themeKey    string
	insertOrder models.InsertOrder
	now         func() time.Time
	newID       func() string
	logger      *slog.Logger
	events      events.EventPublisher
}

// NewService creates a new task service
func NewService(kv database.KVStore, opts ...Option) Service {
	s := defaultService()
	s.kv = kv
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListTasks returns the stored collection in stored order
func (s *service) ListTasks(ctx context.Context) []models.Task {
	return s.load(ctx)
}

// GetTask finds a task by id. The bool is false when no task has that id.
func (s *service) GetTask(ctx context.Context, id string) (models.Task, bool) {
	for _, t := range s.load(ctx) {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// Stats counts pending and completed tasks
func (s *service) Stats(ctx context.Context) Stats {
	var st Stats
	for _, t := range s.load(ctx) {
		st.Total++
		if t.Completed {
			st.Completed++
		} else {
			st.Pending++
		}
	}
	return st
}

// InsertOrder reports where CreateTask places new tasks
func (s *service) InsertOrder() models.InsertOrder {
	return s.insertOrder
}

// CreateTask adds a pending task with a fresh id. The title is stored as given.
func (s *service) CreateTask(ctx context.Context, title, description string) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   s.now(),
	}

	tasks := s.load(ctx)
	if s.insertOrder == models.InsertPrepend {
		tasks = append([]models.Task{task}, tasks...)
	} else {
		tasks = append(tasks, task)
	}

	if err := s.save(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Debug("task created", "id", task.ID)
	return models.CloneTasks(tasks), nil
}

// UpdateTask merges the supplied fields into the task with req.ID
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.load(ctx)
	idx := indexOf(tasks, req.ID)
	if idx < 0 {
		s.logger.Warn("update skipped: task not found", "id", req.ID)
		return tasks, nil
	}
	if req.IsEmpty() {
		return tasks, nil
	}

	t := &tasks[idx]
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Completed != nil {
		s.setCompleted(t, *req.Completed)
	}

	if err := s.save(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Debug("task updated", "id", req.ID)
	return models.CloneTasks(tasks), nil
}

// ToggleCompletion flips the completed flag of the task with id
func (s *service) ToggleCompletion(ctx context.Context, id string) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.load(ctx)
	idx := indexOf(tasks, id)
	if idx < 0 {
		s.logger.Warn("toggle skipped: task not found", "id", id)
		return tasks, nil
	}

	s.setCompleted(&tasks[idx], !tasks[idx].Completed)

	if err := s.save(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to toggle task: %w", err)
	}

	s.logger.Debug("task toggled", "id", id, "completed", tasks[idx].Completed)
	return models.CloneTasks(tasks), nil
}

// DeleteTask removes the task with id. Deleting a missing id changes nothing.
func (s *service) DeleteTask(ctx context.Context, id string) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.load(ctx)
	idx := indexOf(tasks, id)
	if idx < 0 {
		return tasks, nil
	}

	tasks = append(tasks[:idx], tasks[idx+1:]...)

	if err := s.save(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Debug("task deleted", "id", id)
	return models.CloneTasks(tasks), nil
}

// GetThemePreference returns the stored theme, or DefaultTheme if unset or unreadable
func (s *service) GetThemePreference(ctx context.Context) models.Theme {
	raw, err := s.kv.Get(ctx, s.themeKey)
	if errors.Is(err, database.ErrKeyNotFound) {
		return models.DefaultTheme
	}
	if err != nil {
		s.logger.Warn("failed to read theme", "key", s.themeKey, "error", err)
		return models.DefaultTheme
	}

	theme, err := decodeTheme(raw)
	if err != nil {
		s.logger.Warn("failed to read theme", "key", s.themeKey, "error", err)
		return models.DefaultTheme
	}
	return theme
}

// SetThemePreference persists theme
func (s *service) SetThemePreference(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidTheme, theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveTheme(ctx, theme)
}

// ToggleTheme switches between light and dark and returns the new theme
func (s *service) ToggleTheme(ctx context.Context) (models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.GetThemePreference(ctx).Toggle()
	if err := s.saveTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// Clear removes the task collection and the theme preference
func (s *service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, s.tasksKey); err != nil {
		return fmt.Errorf("failed to clear %s: %w: %w", s.tasksKey, ErrWriteFailed, err)
	}
	// tasks are gone even if the theme delete below fails
	events.Publish(s.events, events.Event{Type: events.EventTasksChanged, Key: s.tasksKey})

	if err := s.kv.Delete(ctx, s.themeKey); err != nil {
		return fmt.Errorf("failed to clear %s: %w: %w", s.themeKey, ErrWriteFailed, err)
	}

	s.logger.Debug("store cleared")
	events.Publish(s.events, events.Event{Type: events.EventStoreCleared})
	return nil
}

// ============================================================================
// STORAGE HELPERS
// ============================================================================

// load reads the task collection, degrading to empty on any read failure
func (s *service) load(ctx context.Context) []models.Task {
	raw, err := s.kv.Get(ctx, s.tasksKey)
	if errors.Is(err, database.ErrKeyNotFound) {
		return []models.Task{}
	}
	if err != nil {
		s.logger.Warn("failed to read tasks", "key", s.tasksKey, "error", err)
		return []models.Task{}
	}

	tasks, err := decodeTasks(raw, s.logger)
	if err != nil {
		s.logger.Warn("failed to read tasks", "key", s.tasksKey, "error", err)
		return []models.Task{}
	}
	return tasks
}

func (s *service) save(ctx context.Context, tasks []models.Task) error {
	raw, err := encodeTasks(tasks)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := s.kv.Set(ctx, s.tasksKey, raw); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	events.Publish(s.events, events.Event{Type: events.EventTasksChanged, Key: s.tasksKey})
	return nil
}

func (s *service) saveTheme(ctx context.Context, theme models.Theme) error {
	if err := s.kv.Set(ctx, s.themeKey, theme.String()); err != nil {
		return fmt.Errorf("failed to save theme: %w: %w", ErrWriteFailed, err)
	}

	s.logger.Debug("theme saved", "theme", theme)
	events.Publish(s.events, events.Event{Type: events.EventThemeChanged, Key: s.themeKey})
	return nil
}

// setCompleted updates the flag and keeps completedAt in step with it
func (s *service) setCompleted(t *models.Task, completed bool) {
	if t.Completed == completed {
		return
	}
	t.Completed = completed
	if completed {
		at := s.now()
		t.CompletedAt = &at
	} else {
		t.CompletedAt = nil
	}
}

func indexOf(tasks []models.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
