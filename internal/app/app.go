package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/events"
	"github.com/thenoetrevino/todo/internal/filestore"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Storage backend (SQLite or JSON file)
	store database.KVStore

	// In-process change notifications
	bus *events.Bus

	logger *slog.Logger

	// Service layer (business logic)
	TaskService taskservice.Service
}

// New creates a new App over an already opened store.
// The App takes ownership of the store and closes it on Close.
func New(store database.KVStore, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	bus := events.NewBus()
	taskOpts := []taskservice.Option{
		taskservice.WithLogger(cfg.logger),
		taskservice.WithEventPublisher(bus),
	}
	taskOpts = append(taskOpts, cfg.taskOptions...)

	return &App{
		store:       store,
		bus:         bus,
		logger:      cfg.logger,
		TaskService: taskservice.NewService(store, taskOpts...),
	}
}

// Open opens the storage backend selected by cfg and builds the App around it
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithTaskOptions(
			taskservice.WithInsertOrder(cfg.InsertOrder()),
			taskservice.WithKeys(cfg.Keys.Tasks, cfg.Keys.Theme),
		),
	}
	return New(store, append(base, opts...)...), nil
}

// OpenStore opens the key-value backend named by cfg.Storage
func OpenStore(ctx context.Context, cfg *config.Config) (database.KVStore, error) {
	path, err := cfg.StoragePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage path: %w", err)
	}

	switch cfg.Storage.Backend {
	case config.BackendFile:
		store, err := filestore.New(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file store: %w", err)
		}
		return store, nil
	case config.BackendSQLite, "":
		repo, err := database.OpenRepository(ctx, database.Options{Path: path, Driver: cfg.Storage.Driver})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("%w: storage.backend %q", config.ErrInvalidConfig, cfg.Storage.Backend)
	}
}

// Events returns the bus change notifications are published on
func (a *App) Events() *events.Bus {
	return a.bus
}

// Store returns the underlying key-value store
func (a *App) Store() database.KVStore {
	return a.store
}

// Close stops event delivery and closes the store
func (a *App) Close() error {
	snap := a.bus.Snapshot()
	a.logger.Debug("closing app",
		"events_sent", snap.EventsSent,
		"events_dropped", snap.EventsDropped,
		"uptime", snap.Uptime)
	return errors.Join(a.bus.Close(), a.store.Close())
}
