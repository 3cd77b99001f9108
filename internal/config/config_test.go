package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/jai-kanban/internal/config/colors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configDir := filepath.Join(dir, "jai-kanban")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return configPath
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.EditTask != "e" {
		t.Errorf("Default EditTask key = %s, want e", defaults.EditTask)
	}
	if defaults.ToggleExpand != "space" {
		t.Errorf("Default ToggleExpand key = %s, want space", defaults.ToggleExpand)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("JAI_KANBAN_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Storage.Backend != BackendFile {
		t.Errorf("Default backend = %s, want %s", cfg.Storage.Backend, BackendFile)
	}
	if cfg.Storage.Slot != "jai-kanban-data" {
		t.Errorf("Default slot = %s, want jai-kanban-data", cfg.Storage.Slot)
	}
	if cfg.Policy.Strict || cfg.Policy.EnforceActiveLimit {
		t.Errorf("Policy should be lenient by default, got %+v", cfg.Policy)
	}
	if cfg.Server.Tracing.Exporter != TraceExporterLog || cfg.Server.Tracing.SampleRatio != 1 {
		t.Errorf("Default tracing = %+v, want log exporter sampling every request", cfg.Server.Tracing)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("JAI_KANBAN_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	writeConfig(t, tempDir, `seed_path: /srv/tasks.json
storage:
  backend: sqlite
  sqlite_path: /tmp/kanban.db
server:
  addr: "127.0.0.1:9000"
  shutdown_timeout: 3s
  tracing:
    exporter: none
    sample_ratio: 0.25
policy:
  strict: true
key_mappings:
  quit: "x"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.SeedPath != "/srv/tasks.json" {
		t.Errorf("SeedPath = %s, want /srv/tasks.json", cfg.SeedPath)
	}
	if cfg.Storage.Backend != BackendSQLite || cfg.Storage.SQLitePath != "/tmp/kanban.db" {
		t.Errorf("Storage = %+v, want sqlite at /tmp/kanban.db", cfg.Storage)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Server.Tracing.Exporter != TraceExporterNone || cfg.Server.Tracing.SampleRatio != 0.25 {
		t.Errorf("Tracing = %+v, want none at 0.25", cfg.Server.Tracing)
	}
	if !cfg.Policy.Strict {
		t.Error("Expected strict policy")
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	// Unset keys still get defaults
	if cfg.KeyMappings.NextTask != "j" {
		t.Errorf("Default NextTask key = %s, want j", cfg.KeyMappings.NextTask)
	}
}

func TestLoadConfig_EnvPathOverride(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "storage:\n  backend: memory\n")
	t.Setenv("JAI_KANBAN_CONFIG", path)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Storage.Backend != BackendMemory {
		t.Errorf("Backend = %s, want memory", cfg.Storage.Backend)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "storage: [unclosed"},
		{"unknown backend", "storage:\n  backend: s3\n"},
		{"aztables without connection string", "storage:\n  backend: aztables\n"},
		{"unknown log format", "log:\n  format: xml\n"},
		{"unknown trace exporter", "server:\n  tracing:\n    exporter: jaeger\n"},
		{"sample ratio above one", "server:\n  tracing:\n    sample_ratio: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			if _, err := LoadFrom(path); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

// ============================================================================
// THEME
// ============================================================================

func TestThemeDefaults(t *testing.T) {
	cfg := Default()

	if cfg.ColorScheme.Preset != "default" {
		t.Errorf("Preset = %s, want default", cfg.ColorScheme.Preset)
	}
	if cfg.ColorScheme.TagColors["research"] != "#10B981" {
		t.Errorf("research tag color = %s, want #10B981", cfg.ColorScheme.TagColors["research"])
	}
	if cfg.ColorScheme.PriorityColors["high"] == "" {
		t.Error("Expected a high priority color")
	}
}

func TestThemeCustomTagColorsMergeWithPreset(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `theme:
  preset: wave
  tag_colors:
    ops: "#123456"
  project_colors:
    site: "#ABCDEF"
`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	scheme := cfg.ColorScheme
	if scheme.TagColors["ops"] != "#123456" {
		t.Errorf("Custom tag color lost: %v", scheme.TagColors)
	}
	if scheme.TagColors["dev"] != colors.Wave().TagColors["dev"] {
		t.Errorf("Preset tag color missing: %v", scheme.TagColors)
	}
	if scheme.ProjectColors["site"] != "#ABCDEF" {
		t.Errorf("Project color lost: %v", scheme.ProjectColors)
	}
	if scheme.Accent != colors.Wave().Accent {
		t.Errorf("Accent = %s, want wave accent", scheme.Accent)
	}
}

func TestThemeFileLoading(t *testing.T) {
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := `theme:
  accent: "#FF0000"
  tag_colors:
    dev: "#00FF00"
`
	if err := os.WriteFile(themePath, []byte(themeContent), 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("JAI_KANBAN_THEME_FILE", themePath)

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.TagColors["dev"] != "#00FF00" {
		t.Errorf("Expected dev tag to be #00FF00, got %s", cfg.ColorScheme.TagColors["dev"])
	}
	if cfg.ColorScheme.TagColors["research"] == "" {
		t.Error("Theme file should not drop preset tag colors")
	}
}

func TestGetPreset(t *testing.T) {
	for _, name := range colors.Presets {
		if got := colors.GetPreset(name).Preset; got != name {
			t.Errorf("GetPreset(%s).Preset = %s", name, got)
		}
	}
	if got := colors.GetPreset("nope").Preset; got != "default" {
		t.Errorf("Unknown preset should fall back to default, got %s", got)
	}
}
