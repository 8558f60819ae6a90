package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"bottomhalf-overlay/internal/geometry"
)

// FileName is the fixed name of the config file next to the executable.
const FileName = "config.json"

// AltFileName is accepted when no JSON config is present.
const AltFileName = "config.yaml"

// DefaultURL is used when no url is configured. Any value that is not an
// http(s) URL shows the bundled document.
const DefaultURL = "index.html"

// Config holds all overlay configuration
type Config struct {
	// Content
	URL  string  `json:"url" yaml:"url"`
	Zoom float64 `json:"zoom" yaml:"zoom"`

	// Window
	Opacity           float64 `json:"opacity" yaml:"opacity"`
	ClickThroughStart bool    `json:"click_through_start" yaml:"click_through_start"`
	AutoReloadSeconds int     `json:"auto_reload_seconds" yaml:"auto_reload_seconds"`

	// Placement: fractions of the screen size and pixel offsets from the
	// bottom-center dock position
	ScaleX       float64 `json:"scale_x" yaml:"scale_x"`
	ScaleY       float64 `json:"scale_y" yaml:"scale_y"`
	BottomMargin int     `json:"bottom_margin" yaml:"bottom_margin"`
	SideOffset   int     `json:"side_offset" yaml:"side_offset"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		URL:               DefaultURL,
		Zoom:              1.0,
		Opacity:           1.0,
		ClickThroughStart: false,
		AutoReloadSeconds: 0,
		ScaleX:            0.5,
		ScaleY:            0.25,
		BottomMargin:      0,
		SideOffset:        0,
	}
}

// Load reads a config file and merges it over the defaults.
// On any failure the default record is returned along with the error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}

	cfg := Default()
	if err := decode(path, data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		// Unknown keys are ignored; a type mismatch is a parse failure.
		return json.Unmarshal(data, cfg)
	}
}

// UnmarshalJSON accepts whole-number fields written with a fraction, such as
// "bottom_margin": 10.0, and truncates them toward zero. yaml.v3 already
// decodes floats into ints that way.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		AutoReloadSeconds *float64 `json:"auto_reload_seconds"`
		BottomMargin      *float64 `json:"bottom_margin"`
		SideOffset        *float64 `json:"side_offset"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	setInt(&c.AutoReloadSeconds, aux.AutoReloadSeconds)
	setInt(&c.BottomMargin, aux.BottomMargin)
	setInt(&c.SideOffset, aux.SideOffset)
	return nil
}

func setInt(dst *int, v *float64) {
	if v != nil {
		*dst = int(math.Trunc(*v))
	}
}

// LoadOrDefault tries each path in order and returns the first config that
// loads cleanly together with its path. If none does, it returns the
// defaults and an empty path.
func LoadOrDefault(paths ...string) (Config, string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := Load(path)
		if err != nil {
			return Default(), ""
		}
		return cfg, path
	}
	return Default(), ""
}

// Dir returns the directory holding the executable
func Dir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// Candidates returns the config paths looked up in dir, in priority order
func Candidates(dir string) []string {
	return []string{
		filepath.Join(dir, FileName),
		filepath.Join(dir, AltFileName),
	}
}

// Sanitize replaces values the window and webview cannot use with their
// defaults. Margins and offsets are left as they are.
func (c Config) Sanitize() Config {
	def := Default()
	if c.Zoom <= 0 {
		c.Zoom = def.Zoom
	}
	if c.Opacity < 0 {
		c.Opacity = 0
	}
	if c.Opacity > 1 {
		c.Opacity = 1
	}
	if c.ScaleX <= 0 || c.ScaleX > 1 {
		c.ScaleX = def.ScaleX
	}
	if c.ScaleY <= 0 || c.ScaleY > 1 {
		c.ScaleY = def.ScaleY
	}
	if c.AutoReloadSeconds < 0 {
		c.AutoReloadSeconds = 0
	}
	return c
}

// Placement returns the docking parameters
func (c Config) Placement() geometry.Placement {
	return geometry.Placement{
		ScaleX:       c.ScaleX,
		ScaleY:       c.ScaleY,
		BottomMargin: c.BottomMargin,
		SideOffset:   c.SideOffset,
	}
}

// ReloadInterval returns the periodic reload interval, 0 when disabled
func (c Config) ReloadInterval() time.Duration {
	if c.AutoReloadSeconds <= 0 {
		return 0
	}
	return time.Duration(c.AutoReloadSeconds) * time.Second
}
