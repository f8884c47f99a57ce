package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/thenoetrevino/todo/internal/models"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// ErrInvalidConfig is returned when a loaded config has an unusable value
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Storage StorageConfig `yaml:"storage" toml:"storage"`
	Keys    KeysConfig    `yaml:"keys" toml:"keys"`
	Tasks   TasksConfig   `yaml:"tasks" toml:"tasks"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// StorageConfig selects and locates the key-value backend
type StorageConfig struct {
	Backend string `yaml:"backend" toml:"backend"` // sqlite | file
	Path    string `yaml:"path" toml:"path"`       // database file, or JSON file for backend=file
	Driver  string `yaml:"driver" toml:"driver"`   // sqlite | sqlite3
}

// KeysConfig names the keys the task collection and theme are stored under
type KeysConfig struct {
	Tasks string `yaml:"tasks" toml:"tasks"`
	Theme string `yaml:"theme" toml:"theme"`
}

// TasksConfig controls task collection behaviour
type TasksConfig struct {
	InsertOrder string `yaml:"insert_order" toml:"insert_order"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	Format  string `yaml:"format" toml:"format"`
	Console bool   `yaml:"console" toml:"console"`
}

// Default returns a config with every field set to its default
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory.
// config.yaml wins over config.toml; with neither present the defaults are used.
// Environment overrides are applied last.
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := Path()
	if err == nil {
		if err := readFile(configPath, config); err != nil {
			return nil, err
		}
	}

	applyEnv(config)
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// readFile decodes the YAML config at path, or the TOML file next to it.
// Missing files leave config untouched.
func readFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return nil
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	tomlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".toml"
	if _, err := os.Stat(tomlPath); os.IsNotExist(err) {
		return nil
	}
	if _, err := toml.DecodeFile(tomlPath, config); err != nil {
		return fmt.Errorf("failed to parse %s: %w", tomlPath, err)
	}
	return nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the YAML config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todo", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "todo", "config.yaml"), nil
}

// DataDir returns the directory holding the store and logs (~/.todo)
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".todo"), nil
}

// StoragePath returns the configured storage path with a leading ~ expanded
func (c *Config) StoragePath() (string, error) {
	return expandHome(c.Storage.Path)
}

// InsertOrder returns the parsed tasks.insert_order value
func (c *Config) InsertOrder() models.InsertOrder {
	order, err := models.ParseInsertOrder(c.Tasks.InsertOrder)
	if err != nil {
		return models.InsertAppend
	}
	return order
}

// Validate checks enumerated fields
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("%w: storage.backend %q (must be: sqlite, file)", ErrInvalidConfig, c.Storage.Backend)
	}
	if _, err := models.ParseInsertOrder(c.Tasks.InsertOrder); err != nil {
		return fmt.Errorf("%w: tasks.insert_order: %w", ErrInvalidConfig, err)
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "sqlite"
	}
	if c.Storage.Path == "" {
		if c.Storage.Backend == BackendFile {
			c.Storage.Path = "~/.todo/todo.json"
		} else {
			c.Storage.Path = "~/.todo/todo.db"
		}
	}
	if c.Keys.Tasks == "" {
		c.Keys.Tasks = "@ToDoApp:tasks"
	}
	if c.Keys.Theme == "" {
		c.Keys.Theme = "@ToDoApp:theme"
	}
	if c.Tasks.InsertOrder == "" {
		c.Tasks.InsertOrder = string(models.InsertAppend)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
