package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Mavwarf/appicon/internal/export"
	"github.com/Mavwarf/appicon/internal/icon"
	"github.com/Mavwarf/appicon/internal/paths"
)

// Config holds every tunable of an icon run. A zero-value file ("{}")
// reproduces the shipped icon.
type Config struct {
	OutputDir    string        `json:"output_dir,omitempty"`
	Size         int           `json:"size,omitempty"`
	StartColor   string        `json:"start_color,omitempty"`
	EndColor     string        `json:"end_color,omitempty"`
	StrokeColor  string        `json:"stroke_color,omitempty"`
	CornerRadius float64       `json:"corner_radius,omitempty"`
	Transparent  bool          `json:"transparent,omitempty"`
	ContentsJSON bool          `json:"contents_json,omitempty"`
	Sizes        []export.Size `json:"sizes,omitempty"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		OutputDir:    paths.DefaultOutputDir,
		Size:         icon.DefaultSize,
		StartColor:   Hex(icon.DefaultStart),
		EndColor:     Hex(icon.DefaultEnd),
		StrokeColor:  Hex(icon.DefaultStroke),
		CornerRadius: icon.DefaultCornerRadius,
		Sizes:        export.DefaultSizes(),
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty; it must exist)
//  2. appicon-config.json next to the running binary
//  3. ~/.config/appicon/appicon-config.json
//
// When no file is found the defaults are returned without error.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	// User config directory
	p := filepath.Join(paths.ConfigDir(), paths.ConfigFileName)
	if _, err := os.Stat(p); err == nil {
		return readConfig(p)
	}

	return Default(), nil
}

func readConfig(path string) (Config, error) {
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

// Validate checks values that JSON decoding alone cannot.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.Size < icon.MinSize {
		return fmt.Errorf("size must be at least %d, got %d", icon.MinSize, c.Size)
	}
	if c.CornerRadius < 0 || c.CornerRadius > float64(c.Size)/2 {
		return fmt.Errorf("corner_radius must be between 0 and size/2, got %g", c.CornerRadius)
	}
	for name, v := range map[string]string{
		"start_color":  c.StartColor,
		"end_color":    c.EndColor,
		"stroke_color": c.StrokeColor,
	} {
		if _, err := ParseHex(v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if err := export.ValidateSizes(c.Sizes); err != nil {
		return fmt.Errorf("sizes: %w", err)
	}
	return nil
}

// IconOptions converts the config into render options. Call Validate first;
// unparsable colors fall back to the defaults here.
func (c Config) IconOptions() icon.Options {
	opts := icon.DefaultOptions()
	opts.Size = c.Size
	opts.CornerRadius = c.CornerRadius
	opts.Transparent = c.Transparent
	if v, err := ParseHex(c.StartColor); err == nil {
		opts.Start = v
	}
	if v, err := ParseHex(c.EndColor); err == nil {
		opts.End = v
	}
	if v, err := ParseHex(c.StrokeColor); err == nil {
		opts.Stroke = v
	}
	return opts
}

// ParseHex parses "#RRGGBB" (the leading # is optional) into an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q (want #RRGGBB)", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q (want #RRGGBB)", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Hex formats c as "#RRGGBB".
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
