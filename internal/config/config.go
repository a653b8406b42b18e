package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/invview/internal/layout"
	"github.com/appengine-ltd/invview/internal/logging"
)

const DefaultFile = "invview.yaml"

var ErrInvalid = errors.New("invalid config")

type Rect struct {
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type Panel struct {
	Rect  Rect   `yaml:"rect"`
	Align string `yaml:"align,omitempty"`
}

type Preview struct {
	SelectedScale float32 `yaml:"selected_scale"`
	TiltX         float32 `yaml:"tilt_x"`
	TiltY         float32 `yaml:"tilt_y"`
	TiltZ         float32 `yaml:"tilt_z"`
	// SpinDegPerSec is the idle rotation speed of the selected item.
	SpinDegPerSec float32 `yaml:"spin_deg_per_sec"`
}

type Window struct {
	Width  int32 `yaml:"width"`
	Height int32 `yaml:"height"`
	FPS    int32 `yaml:"fps"`
}

type Config struct {
	SlotSize       float32 `yaml:"slot_size"`
	Self           Panel   `yaml:"self_panel"`
	Other          Panel   `yaml:"other_panel"`
	Preview        Preview `yaml:"preview"`
	Window         Window  `yaml:"window"`
	CategoriesFile string  `yaml:"categories_file,omitempty"`
	WorldFile      string  `yaml:"world_file,omitempty"`
	LogLevel       string  `yaml:"log_level,omitempty"`
	LogFile        string  `yaml:"log_file,omitempty"`
}

// Default matches the game's 1366x768 window: own inventory on the right,
// the other party on the left.
func Default() Config {
	return Config{
		SlotSize: 80,
		Self: Panel{
			Rect:  Rect{X: 766, Y: 40, Width: 560, Height: 480},
			Align: "top_right",
		},
		Other: Panel{
			Rect:  Rect{X: 40, Y: 40, Width: 560, Height: 480},
			Align: "top_left",
		},
		Preview: Preview{
			SelectedScale: 1.2,
			TiltX:         -25,
			SpinDegPerSec: 60,
		},
		Window:    Window{Width: 1366, Height: 768, FPS: 60},
		WorldFile: "world.json",
		LogLevel:  "info",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.SlotSize <= 0 {
		return fmt.Errorf("%w: slot_size must be positive, got %v", ErrInvalid, c.SlotSize)
	}
	for name, p := range map[string]Panel{"self_panel": c.Self, "other_panel": c.Other} {
		if p.Rect.Width < c.SlotSize || p.Rect.Height < c.SlotSize {
			return fmt.Errorf("%w: %s must fit at least one slot", ErrInvalid, name)
		}
		if p.Align != "" {
			if _, ok := layout.ParseAlignment(p.Align); !ok {
				return fmt.Errorf("%w: %s align %q", ErrInvalid, name, p.Align)
			}
		}
	}
	if c.Preview.SelectedScale <= 0 {
		return fmt.Errorf("%w: preview.selected_scale must be positive", ErrInvalid)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive", ErrInvalid)
	}
	if c.LogLevel != "" {
		if _, err := logging.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	return nil
}

// Alignment resolves a panel's alignment, top_left when unset.
func (p Panel) Alignment() layout.Alignment {
	a, ok := layout.ParseAlignment(p.Align)
	if !ok {
		return layout.TopLeft
	}
	return a
}

// Save writes cfg as YAML via a temp file renamed over path.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "invview-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	cleanup = false
	return nil
}
