package app

import (
	"log/slog"

	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger      *slog.Logger
	taskOptions []taskservice.Option
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithTaskOptions passes extra options through to the task service
func WithTaskOptions(opts ...taskservice.Option) Option {
	return func(cfg *appConfig) {
		cfg.taskOptions = append(cfg.taskOptions, opts...)
	}
}
