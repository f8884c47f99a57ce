package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

var (
	mu      sync.Mutex
	logFile *os.File
)

// Options controls where and how much the application logs
type Options struct {
	// Dir receives todo.log. Empty means ~/.todo/logs.
	Dir string
	// Level is one of debug, info, warn, error
	Level string
	// Format is the console formatter: text, json or logfmt
	Format string
	// Console mirrors records to ConsoleWriter (stderr when nil)
	Console       bool
	ConsoleWriter io.Writer
}

// Init initializes the logging system, writing logs to <Dir>/todo.log.
// Uses text format for human readability. With Console set, records are
// also written to the terminal through charmbracelet/log.
func Init(opts Options) error {
	logDir := opts.Dir
	if logDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logDir = filepath.Join(homeDir, ".todo", "logs")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "todo.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	level := slog.Level(ParseLogLevel(opts.Level))

	var handler slog.Handler = slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: level,
	})

	if opts.Console {
		w := opts.ConsoleWriter
		if w == nil {
			w = os.Stderr
		}
		handler = NewFanoutHandler(handler, NewConsoleHandler(w, opts.Level, opts.Format))
	}

	mu.Lock()
	previous := logFile
	logFile = file
	mu.Unlock()
	if previous != nil {
		_ = previous.Close()
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}

// Close flushes and closes the log file opened by Init
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// NewConsoleHandler returns a charmbracelet/log logger usable as a slog.Handler
func NewConsoleHandler(w io.Writer, level, format string) slog.Handler {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           ParseLogLevel(level),
		Formatter:       ParseLogFormatter(format),
		ReportTimestamp: true,
		Prefix:          "todo",
	})
}

// ParseLogLevel parses a string log level to a charmbracelet/log Level.
// The numeric values line up with slog levels.
func ParseLogLevel(level string) charmlog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return charmlog.DebugLevel
	case "warn", "warning":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// ParseLogFormatter parses a string formatter name to a charmbracelet/log Formatter.
func ParseLogFormatter(format string) charmlog.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return charmlog.JSONFormatter
	case "logfmt":
		return charmlog.LogfmtFormatter
	default:
		return charmlog.TextFormatter
	}
}
