package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/appengine-ltd/invview/internal/layout"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SlotSize != Default().SlotSize {
		t.Fatalf("expected default slot size, got %v", cfg.SlotSize)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invview.yaml")
	data := []byte(`
slot_size: 64
self_panel:
  rect: {x: 0, y: 0, width: 320, height: 256}
  align: center
preview:
  selected_scale: 1.5
log_level: debug
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SlotSize != 64 || cfg.Self.Rect.Width != 320 || cfg.Preview.SelectedScale != 1.5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Self.Alignment() != layout.Centered {
		t.Fatalf("expected centered alignment, got %+v", cfg.Self.Alignment())
	}
	if cfg.Other.Rect != Default().Other.Rect {
		t.Fatalf("expected untouched other panel to keep defaults, got %+v", cfg.Other.Rect)
	}
	if cfg.Preview.TiltX != Default().Preview.TiltX {
		t.Fatalf("expected default tilt kept, got %v", cfg.Preview.TiltX)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"slot size":   func(c *Config) { c.SlotSize = 0 },
		"small panel": func(c *Config) { c.Self.Rect.Width = 10 },
		"align":       func(c *Config) { c.Other.Align = "diagonal" },
		"scale":       func(c *Config) { c.Preview.SelectedScale = 0 },
		"window":      func(c *Config) { c.Window.Height = 0 },
		"log level":   func(c *Config) { c.LogLevel = "shouty" },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "invview.yaml")
	cfg := Default()
	cfg.SlotSize = 96
	cfg.Self.Rect = Rect{X: 10, Y: 10, Width: 480, Height: 480}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.SlotSize != 96 || got.Self.Rect != cfg.Self.Rect {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the config file, found %d entries", len(entries))
	}
}
