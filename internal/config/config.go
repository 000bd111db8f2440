package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/Mavwarf/tictracker-icon/internal/fonts"
	"github.com/Mavwarf/tictracker-icon/internal/icon"
)

// Default values; they reproduce the TicTracker icon.
const (
	DefaultText           = "+1"
	DefaultGradientTop    = "#2ECCC1"
	DefaultGradientBottom = "#3B82F6"
)

// Config holds optional overrides for the rendered icon. Output sizes are
// fixed by the iconset format and deliberately absent here.
type Config struct {
	Text           string   `json:"text"`
	GradientTop    string   `json:"gradient_top"`
	GradientBottom string   `json:"gradient_bottom"`
	Fonts          []string `json:"fonts,omitempty"`
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Text:           DefaultText,
		GradientTop:    DefaultGradientTop,
		GradientBottom: DefaultGradientBottom,
	}
}

// Load reads a config file. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Style converts the config into render parameters.
func (c Config) Style() (icon.Style, error) {
	st := icon.DefaultStyle()
	if c.Text == "" {
		return st, fmt.Errorf("text must not be empty")
	}
	st.Text = c.Text

	top, err := ParseHexColor(c.GradientTop)
	if err != nil {
		return st, fmt.Errorf("gradient_top: %w", err)
	}
	bottom, err := ParseHexColor(c.GradientBottom)
	if err != nil {
		return st, fmt.Errorf("gradient_bottom: %w", err)
	}
	st.Top, st.Bottom = top, bottom
	return st, nil
}

// FontCandidates returns the configured font paths, or the built-in
// system font list when none are set.
func (c Config) FontCandidates() []string {
	if len(c.Fonts) > 0 {
		return c.Fonts
	}
	return fonts.Candidates
}

// ParseHexColor parses "#RRGGBB" (leading '#' optional) into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
