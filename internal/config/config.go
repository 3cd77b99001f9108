package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/jai-kanban/internal/board"
	"github.com/thenoetrevino/jai-kanban/internal/config/colors"
	"github.com/thenoetrevino/jai-kanban/internal/models"
)

const appName = "jai-kanban"

// ColorScheme is the terminal theme section
type ColorScheme = colors.ColorScheme

// Storage backends
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendAzTables = "aztables"
	BackendMemory   = "memory"
)

// Config represents the application configuration
type Config struct {
	SeedPath    string        `yaml:"seed_path"`
	Storage     StorageConfig `yaml:"storage"`
	Server      ServerConfig  `yaml:"server"`
	Log         LogConfig     `yaml:"log"`
	Policy      board.Policy  `yaml:"policy"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
}

// StorageConfig selects and configures the snapshot backend
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Slot    string `yaml:"slot"`

	// file backend
	Dir string `yaml:"dir"`

	// sqlite backend
	SQLitePath string `yaml:"sqlite_path"`

	// redis backend
	RedisURL    string `yaml:"redis_url"`
	RedisPrefix string `yaml:"redis_prefix"`

	// aztables backend
	AzureConnectionString string `yaml:"azure_connection_string"`
	AzureTable            string `yaml:"azure_table"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Tracing         TracingConfig `yaml:"tracing"`
}

// Trace exporters
const (
	TraceExporterLog  = "log"
	TraceExporterNone = "none"
)

// TracingConfig configures request tracing for the HTTP server. The log
// exporter writes finished spans to the debug log.
type TracingConfig struct {
	Exporter    string  `yaml:"exporter"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LogConfig configures logging; an empty Path lets the caller pick the sink
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from JAI_KANBAN_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("JAI_KANBAN_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from JAI_KANBAN_CONFIG or the user's config directory.
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from path, falling back to defaults when it does not exist
func LoadFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	// Load theme from JAI_KANBAN_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(configPath, data, 0o644)
}

// Validate rejects settings that cannot work
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite, BackendRedis, BackendMemory:
	case BackendAzTables:
		if c.Storage.AzureConnectionString == "" {
			return fmt.Errorf("storage.azure_connection_string is required for the %s backend", BackendAzTables)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	switch c.Log.Format {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	switch c.Server.Tracing.Exporter {
	case TraceExporterLog, TraceExporterNone:
	default:
		return fmt.Errorf("unknown trace exporter %q", c.Server.Tracing.Exporter)
	}
	if c.Server.Tracing.SampleRatio > 1 {
		return fmt.Errorf("server.tracing.sample_ratio must be at most 1, got %v", c.Server.Tracing.SampleRatio)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if path := os.Getenv("JAI_KANBAN_CONFIG"); path != "" {
		return path, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// DataDir returns ~/.jai-kanban, where snapshots, the database and logs live
func DataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "."+appName)
	}
	return filepath.Join(homeDir, "."+appName)
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Storage.applyDefaults()
	c.Server.applyDefaults()
	c.Log.applyDefaults()
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

func (s *StorageConfig) applyDefaults() {
	if s.Backend == "" {
		s.Backend = BackendFile
	}
	if s.Slot == "" {
		s.Slot = models.DefaultSlotKey
	}
	if s.Dir == "" {
		s.Dir = filepath.Join(DataDir(), "data")
	}
	if s.SQLitePath == "" {
		s.SQLitePath = filepath.Join(DataDir(), "kanban.db")
	}
	if s.RedisURL == "" {
		s.RedisURL = "redis://localhost:6379/0"
	}
	if s.RedisPrefix == "" {
		s.RedisPrefix = appName + ":"
	}
	if s.AzureTable == "" {
		s.AzureTable = "snapshots"
	}
}

func (s *ServerConfig) applyDefaults() {
	if s.Addr == "" {
		s.Addr = ":8080"
	}
	if s.ShutdownTimeout <= 0 {
		s.ShutdownTimeout = 10 * time.Second
	}
	if s.Tracing.Exporter == "" {
		s.Tracing.Exporter = TraceExporterLog
	}
	if s.Tracing.SampleRatio <= 0 {
		s.Tracing.SampleRatio = 1
	}
}

func (l *LogConfig) applyDefaults() {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}
