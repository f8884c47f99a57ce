package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/models"
)

// isolate points config lookups at a fresh temp dir and clears overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{EnvStorageBackend, EnvStoragePath, EnvStorageDriver, EnvInsertOrder, EnvLogLevel, EnvLogConsole} {
		t.Setenv(k, "")
	}
	return filepath.Join(dir, "todo")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "~/.todo/todo.db", cfg.Storage.Path)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "@ToDoApp:tasks", cfg.Keys.Tasks)
	assert.Equal(t, "@ToDoApp:theme", cfg.Keys.Theme)
	assert.Equal(t, models.InsertAppend, cfg.InsertOrder())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Console)
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), `storage:
  backend: file
keys:
  tasks: todo_tasks
tasks:
  insert_order: prepend
logging:
  console: true
`)
	// A TOML file next to the YAML one is ignored
	writeFile(t, filepath.Join(dir, "config.toml"), "[storage]\nbackend = \"sqlite\"\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "~/.todo/todo.json", cfg.Storage.Path)
	assert.Equal(t, "todo_tasks", cfg.Keys.Tasks)
	assert.Equal(t, "@ToDoApp:theme", cfg.Keys.Theme)
	assert.Equal(t, models.InsertPrepend, cfg.InsertOrder())
	assert.True(t, cfg.Logging.Console)
}

func TestLoadConfigWithTOML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `
[storage]
backend = "sqlite"
path = "/tmp/todo-toml.db"

[logging]
level = "debug"
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/todo-toml.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), "storage:\n  path: /from/file.db\n")

	t.Setenv(EnvStoragePath, "/from/env.db")
	t.Setenv(EnvInsertOrder, "prepend")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogConsole, "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.Storage.Path)
	assert.Equal(t, models.InsertPrepend, cfg.InsertOrder())
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":         "storage: [",
		"unknown backend":  "storage:\n  backend: redis\n",
		"bad insert order": "tasks:\n  insert_order: middle\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			writeFile(t, filepath.Join(dir, "config.yaml"), content)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := isolate(t)

	cfg := Default()
	cfg.Tasks.InsertOrder = "prepend"
	require.NoError(t, cfg.Save())
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envFile, EnvInsertOrder+"=prepend\n")
	t.Cleanup(func() { os.Unsetenv(EnvInsertOrder) })
	os.Unsetenv(EnvInsertOrder)

	require.NoError(t, LoadDotEnv(envFile))
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, models.InsertPrepend, cfg.InsertOrder())
}

func TestStoragePath_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := Default()
	path, err := cfg.StoragePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".todo", "todo.db"), path)

	cfg.Storage.Path = "/abs/todo.db"
	path, err = cfg.StoragePath()
	require.NoError(t, err)
	assert.Equal(t, "/abs/todo.db", path)
}
