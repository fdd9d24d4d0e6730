package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// isolate points HOME and the working directory at empty temp dirs so the
// loader only sees what the test writes.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	for _, k := range []string{EnvDBPath, EnvLogLevel, EnvLogFile, EnvTickRate} {
		t.Setenv(k, "")
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultMatchesDefaultConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := DefaultConfig()
	if cfg.TickRate != want.TickRate {
		t.Errorf("TickRate = %d, want %d", cfg.TickRate, want.TickRate)
	}
	if strings.Join(cfg.Keys.Confirm, ",") != strings.Join(want.Keys.Confirm, ",") {
		t.Errorf("Confirm keys = %v, want %v", cfg.Keys.Confirm, want.Keys.Confirm)
	}
	if len(cfg.Theme.Tiles) != len(want.Theme.Tiles) {
		t.Errorf("theme has %d tiles, want %d", len(cfg.Theme.Tiles), len(want.Theme.Tiles))
	}
	if cfg.Storage.DBPath != want.Storage.DBPath {
		t.Errorf("DBPath = %q, want %q", cfg.Storage.DBPath, want.Storage.DBPath)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	writeFile(t, filepath.Join("configs", fileName), "tick_rate: 20\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickRate != 20 {
		t.Errorf("local config: TickRate = %d, want 20", cfg.TickRate)
	}

	writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "tick_rate: 25\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickRate != 25 {
		t.Errorf("user config: TickRate = %d, want 25", cfg.TickRate)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "tick_rate: 10\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickRate != 10 {
		t.Errorf("custom config: TickRate = %d, want 10", cfg.TickRate)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, path, "keys:\n  confirm: [\"n\"]\ntheme:\n  tiles:\n    2: cyan\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Keys.Confirm; len(got) != 1 || got[0] != "n" {
		t.Errorf("Confirm = %v, want [n]", got)
	}
	if len(cfg.Keys.Left) == 0 {
		t.Error("unset key lists should keep defaults")
	}
	colors := cfg.TileColors()
	if colors[2] != core.ColorCyan {
		t.Errorf("tile 2 color = %d, want cyan", colors[2])
	}
	if colors[2048] != core.ColorBrightGreen {
		t.Errorf("tile 2048 color = %d, want bright green", colors[2048])
	}
}

func TestLoadMissingCustomFile(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "tick_rate: 0\n")

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for tick_rate 0")
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDBPath, "/tmp/scores.db")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "/tmp/t2048.log")
	t.Setenv(EnvTickRate, "60")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.DBPath != "/tmp/scores.db" {
		t.Errorf("DBPath = %q", cfg.Storage.DBPath)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/t2048.log" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", cfg.TickRate)
	}
}

func TestEnvIgnoresBadInt(t *testing.T) {
	isolate(t)
	t.Setenv(EnvTickRate, "fast")

	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	if cfg.TickRate != DefaultConfig().TickRate {
		t.Errorf("TickRate = %d, want default", cfg.TickRate)
	}
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	writeFile(t, path, EnvLogLevel+"=warn\n")

	if got := LoadDotEnv(filepath.Join(dir, "missing.env"), path); got != path {
		t.Fatalf("LoadDotEnv = %q, want %q", got, path)
	}
	// godotenv does not override variables that are already set, and
	// isolate set this one to "". Clear it and load again.
	os.Unsetenv(EnvLogLevel)
	LoadDotEnv(path)

	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	os.Unsetenv(EnvLogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, "tick_rate"},
		{"empty key list", func(c *Config) { c.Keys.Up = nil }, "no key bound to MoveUp"},
		{"duplicate binding", func(c *Config) { c.Keys.Cancel = append(c.Keys.Cancel, "a") }, `"a" bound to both`},
		{"reserved key", func(c *Config) { c.Keys.Confirm = []string{"ctrl+c"} }, "reserved"},
		{"unknown color", func(c *Config) { c.Theme.Tiles[8] = "plaid" }, `unknown color "plaid"`},
		{"bad tile value", func(c *Config) { c.Theme.Tiles[3] = "red" }, "tile 3"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "error"
	if got := cfg.LogLevel().String(); got != "error" {
		t.Errorf("LogLevel = %q, want error", got)
	}

	cfg.Log.Level = "nonsense"
	if got := cfg.LogLevel().String(); got != "info" {
		t.Errorf("LogLevel fallback = %q, want info", got)
	}
}

func TestExpandHome(t *testing.T) {
	home := isolate(t)

	tests := []struct {
		in, want string
	}{
		{"~/.t2048/scores.db", filepath.Join(home, ".t2048", "scores.db")},
		{"/abs/path.db", "/abs/path.db"},
		{"rel.db", "rel.db"},
		{"~user/x", "~user/x"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
