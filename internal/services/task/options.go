package task

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/todo/internal/events"
	"github.com/thenoetrevino/todo/internal/models"
)

// Default storage keys
const (
	DefaultTasksKey = "@ToDoApp:tasks"
	DefaultThemeKey = "@ToDoApp:theme"
)

// Option configures a task service
type Option func(*service)

// WithInsertOrder sets where new tasks are placed (append by default)
func WithInsertOrder(order models.InsertOrder) Option {
	return func(s *service) {
		s.insertOrder = order
	}
}

// WithClock overrides the time source used for createdAt and completedAt
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the task id generator
func WithIDGenerator(gen func() string) Option {
	return func(s *service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithKeys overrides the storage keys. Empty values keep the defaults.
func WithKeys(tasksKey, themeKey string) Option {
	return func(s *service) {
		if tasksKey != "" {
			s.tasksKey = tasksKey
		}
		if themeKey != "" {
			s.themeKey = themeKey
		}
	}
}

// WithLogger sets the logger for read failures and not-found no-ops
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEventPublisher sets the publisher notified after every successful write
func WithEventPublisher(publisher events.EventPublisher) Option {
	return func(s *service) {
		s.events = publisher
	}
}

func defaultService() *service {
	return &service{
		tasksKey:    DefaultTasksKey,
		themeKey:    DefaultThemeKey,
		insertOrder: models.InsertAppend,
		now:         time.Now,
		newID:       uuid.NewString,
		logger:      slog.Default(),
	}
}
