// Package logging installs the process-wide slog logger. Records are formatted
// by charmbracelet/log; call sites use log/slog.
package logging

import (
	"fmt"
	"io"
	stdlog "log"
	"log/slog"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"

	"github.com/thenoetrevino/jai-kanban/internal/config"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// DefaultPath returns ~/.jai-kanban/logs/kanban.log
func DefaultPath() string {
	return filepath.Join(config.DataDir(), "logs", "kanban.log")
}

// Init writes logs to cfg.Path, or to DefaultPath when unset. Used by the
// terminal board and the CLI, which own stdout and stderr.
func Init(cfg config.LogConfig) (io.Closer, error) {
	logPath := cfg.Path
	if logPath == "" {
		logPath = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	if err := Setup(file, cfg); err != nil {
		_ = file.Close()
		return nil, err
	}
	return file, nil
}

// Setup installs a handler writing to w as the slog default
func Setup(w io.Writer, cfg config.LogConfig) error {
	handler, err := NewHandler(w, cfg)
	if err != nil {
		return err
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same sink
	stdlog.SetOutput(w)
	stdlog.SetFlags(stdlog.LstdFlags)
	return nil
}

// NewHandler builds a charmbracelet/log logger usable as a slog.Handler
func NewHandler(w io.Writer, cfg config.LogConfig) (*charmlog.Logger, error) {
	level := charmlog.InfoLevel
	if cfg.Level != "" {
		parsed, err := charmlog.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}

	formatter := charmlog.TextFormatter
	switch cfg.Format {
	case "", "text":
	case "json":
		formatter = charmlog.JSONFormatter
	case "logfmt":
		formatter = charmlog.LogfmtFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		Prefix:          "jai-kanban",
	}), nil
}
