package fgui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// UIConfig holds the interaction tunables of a Stage.
type UIConfig struct {
	// TouchDragSensitivity is the distance a touch must travel before a
	// draggable node starts dragging.
	TouchDragSensitivity float64 `yaml:"touchDragSensitivity" toml:"touchDragSensitivity"`
	// ClickDragSensitivity is the distance the mouse may travel between press
	// and release while still producing a click. It also gates mouse drags.
	ClickDragSensitivity float64 `yaml:"clickDragSensitivity" toml:"clickDragSensitivity"`
	// DoubleClickInterval is the maximum time in seconds between two clicks
	// of a double click.
	DoubleClickInterval float64 `yaml:"doubleClickInterval" toml:"doubleClickInterval"`
	// DebugMode enables disposed-node panics and stderr warnings.
	DebugMode bool `yaml:"debugMode" toml:"debugMode"`
}

const (
	defaultTouchDragSensitivity = 10
	defaultClickDragSensitivity = 2
	defaultDoubleClickInterval  = 0.3
)

// DefaultUIConfig returns the stock tunables.
func DefaultUIConfig() UIConfig {
	return UIConfig{
		TouchDragSensitivity: defaultTouchDragSensitivity,
		ClickDragSensitivity: defaultClickDragSensitivity,
		DoubleClickInterval:  defaultDoubleClickInterval,
	}
}

// ConfigFormat selects the encoding of a config document.
type ConfigFormat string

const (
	FormatYAML ConfigFormat = "yaml"
	FormatTOML ConfigFormat = "toml"
)

// LoadUIConfig reads a config file. The format is chosen by extension:
// .yaml/.yml or .toml.
func LoadUIConfig(path string) (UIConfig, error) {
	var format ConfigFormat
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".toml":
		format = FormatTOML
	default:
		return UIConfig{}, fmt.Errorf("load ui config %s: unsupported extension", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return UIConfig{}, fmt.Errorf("load ui config: %w", err)
	}
	cfg, err := ParseUIConfig(data, format)
	if err != nil {
		return UIConfig{}, fmt.Errorf("load ui config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseUIConfig decodes data in the given format. Missing, zero or negative
// values fall back to the defaults.
func ParseUIConfig(data []byte, format ConfigFormat) (UIConfig, error) {
	var cfg UIConfig
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return UIConfig{}, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return UIConfig{}, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return UIConfig{}, fmt.Errorf("parse ui config: unknown format %q", format)
	}
	return cfg.withDefaults(), nil
}

func (c UIConfig) withDefaults() UIConfig {
	if c.TouchDragSensitivity <= 0 {
		c.TouchDragSensitivity = defaultTouchDragSensitivity
	}
	if c.ClickDragSensitivity <= 0 {
		c.ClickDragSensitivity = defaultClickDragSensitivity
	}
	if c.DoubleClickInterval <= 0 {
		c.DoubleClickInterval = defaultDoubleClickInterval
	}
	return c
}
