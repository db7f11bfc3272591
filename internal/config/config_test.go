// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.MaxAngle != 270 {
		t.Errorf("expected max angle 270, got %v", cfg.MaxAngle)
	}
	if cfg.Escape != EscapeClose || cfg.Centering != CenterExact {
		t.Errorf("unexpected defaults: escape=%s centering=%s", cfg.Escape, cfg.Centering)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"size too small", func(c *Config) { c.Size = 89 }, "size"},
		{"size too large", func(c *Config) { c.Size = 361 }, "size"},
		{"opacity negative", func(c *Config) { c.Opacity = -1 }, "opacity"},
		{"opacity too large", func(c *Config) { c.Opacity = 256 }, "opacity"},
		{"zero angle", func(c *Config) { c.MaxAngle = 0 }, "max_angle"},
		{"negative axis", func(c *Config) { c.Axis = -1 }, "axis"},
		{"negative tps", func(c *Config) { c.TPS = -5 }, "tps"},
		{"backend", func(c *Config) { c.Backend = "sdl" }, "backend"},
		{"escape", func(c *Config) { c.Escape = "quit" }, "escape"},
		{"centering", func(c *Config) { c.Centering = "middle" }, "centering"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateAcceptsBounds(t *testing.T) {
	for _, size := range []int{MinSize, MaxSize} {
		cfg := Default()
		cfg.Size = size
		if err := cfg.Validate(); err != nil {
			t.Errorf("size %d should be valid: %v", size, err)
		}
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "size: 240\nescape: terminate\ncentering: legacy\nbackend: native\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Size != 240 {
		t.Errorf("expected size 240, got %d", cfg.Size)
	}
	if cfg.Escape != EscapeTerminate || cfg.Centering != CenterLegacy || cfg.Backend != BackendNative {
		t.Errorf("enums not loaded: %+v", cfg)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Log.Level)
	}
	// В файле поля нет, остаётся значение по умолчанию.
	if cfg.Opacity != DefaultOpacity || cfg.Wheel != DefaultWheel {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("size: 1000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}

	if err := os.WriteFile(path, []byte("size: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Size = 300
	cfg.Opacity = 128
	cfg.Wheel = "rally.png"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != cfg {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Size = 10
	if err := Save(filepath.Join(t.TempDir(), "c.yaml"), cfg); err == nil {
		t.Fatal("expected error")
	}
}
