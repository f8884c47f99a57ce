package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	owned  bool
}

// WithApp returns a context carrying an already opened App.
// Commands run under it share that App and leave closing it to the caller.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig returns a context carrying the loaded configuration
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration placed by WithConfig, or loads it
func ConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
		return cfg, nil
	}
	return config.Load()
}

// GetCLIFromContext returns a CLI for the App in ctx, opening one from the
// configuration when none is present. Always Close the result.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: cfg}, nil
	}

	return NewCLI(ctx, cfg)
}

// NewCLI opens the storage backend described by cfg
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &CLI{
		App:    application,
		Config: cfg,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources. An App taken from the context is left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// Open returns the CLI for cmd's context, reporting failures through f
func Open(cmd *cobra.Command, f *OutputFormatter) (*CLI, error) {
	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		code := ExitError
		if errors.Is(err, config.ErrInvalidConfig) {
			code = ExitDataErr
		}
		return nil, f.Fail(code, "INITIALIZATION_ERROR", err, "Run 'todo config path' to locate the config file")
	}
	return cliInstance, nil
}

// CloseQuietly closes c and logs any error
func CloseQuietly(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}
