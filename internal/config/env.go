package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override config file values
const (
	EnvStorageBackend = "TODO_STORAGE_BACKEND"
	EnvStoragePath    = "TODO_STORAGE_PATH"
	EnvStorageDriver  = "TODO_STORAGE_DRIVER"
	EnvInsertOrder    = "TODO_INSERT_ORDER"
	EnvLogLevel       = "TODO_LOG_LEVEL"
	EnvLogConsole     = "TODO_LOG_CONSOLE"
)

// LoadDotEnv loads variables from the given .env files (default ".env").
// Missing files are ignored; variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// applyEnv overlays TODO_* environment variables onto config
func applyEnv(c *Config) {
	if v := os.Getenv(EnvStorageBackend); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv(EnvStoragePath); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvStorageDriver); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv(EnvInsertOrder); v != "" {
		c.Tasks.InsertOrder = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogConsole); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.Console = b
		}
	}
}
