package config

import (
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mavwarf/appicon/internal/export"
	"github.com/Mavwarf/appicon/internal/icon"
	"github.com/Mavwarf/appicon/internal/paths"
)

func TestUnmarshalEmptyUsesDefaults(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(`{}`), &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if cfg.OutputDir != paths.DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, paths.DefaultOutputDir)
	}
	if cfg.Size != icon.DefaultSize {
		t.Errorf("Size = %d, want %d", cfg.Size, icon.DefaultSize)
	}
	if cfg.StartColor != "#6B46C1" || cfg.EndColor != "#06B6D4" || cfg.StrokeColor != "#FFFFFF" {
		t.Errorf("colors = %s %s %s", cfg.StartColor, cfg.EndColor, cfg.StrokeColor)
	}
	if cfg.CornerRadius != icon.DefaultCornerRadius {
		t.Errorf("CornerRadius = %g, want %d", cfg.CornerRadius, icon.DefaultCornerRadius)
	}
	if len(cfg.Sizes) != 13 {
		t.Errorf("len(Sizes) = %d, want 13", len(cfg.Sizes))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestUnmarshalOverrides(t *testing.T) {
	data := []byte(`{
		"output_dir": "out/icons",
		"start_color": "#000000",
		"transparent": true,
		"contents_json": true,
		"sizes": [{"pixels": 60, "label": "60"}, {"pixels": 120, "label": "120"}]
	}`)

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if cfg.OutputDir != "out/icons" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.StartColor != "#000000" {
		t.Errorf("StartColor = %q", cfg.StartColor)
	}
	if cfg.EndColor != "#06B6D4" {
		t.Errorf("EndColor = %q, want default", cfg.EndColor)
	}
	if !cfg.Transparent || !cfg.ContentsJSON {
		t.Errorf("Transparent = %v, ContentsJSON = %v", cfg.Transparent, cfg.ContentsJSON)
	}
	want := []export.Size{{Pixels: 60, Label: "60"}, {Pixels: 120, Label: "120"}}
	if len(cfg.Sizes) != 2 || cfg.Sizes[0] != want[0] || cfg.Sizes[1] != want[1] {
		t.Errorf("Sizes = %v, want %v", cfg.Sizes, want)
	}
	if export.DefaultSizes()[0] != (export.Size{Pixels: 20, Label: "20"}) {
		t.Error("decoding sizes modified the defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errSub string
	}{
		{"empty output", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"zero size", func(c *Config) { c.Size = 0 }, "size"},
		{"too small", func(c *Config) { c.Size = 512 }, "at least"},
		{"negative radius", func(c *Config) { c.CornerRadius = -1 }, "corner_radius"},
		{"radius past half", func(c *Config) { c.CornerRadius = 600 }, "corner_radius"},
		{"bad start", func(c *Config) { c.StartColor = "purple" }, "start_color"},
		{"bad stroke", func(c *Config) { c.StrokeColor = "#GGGGGG" }, "stroke_color"},
		{"duplicate labels", func(c *Config) { c.Sizes = []export.Size{{Pixels: 20, Label: "x"}, {Pixels: 40, Label: "x"}} }, "sizes"},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.modify(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.errSub) {
			t.Errorf("%s: error %q should mention %q", tt.name, err, tt.errSub)
		}
	}
}

func TestIconOptions(t *testing.T) {
	cfg := Default()
	cfg.StartColor = "#102030"
	cfg.Transparent = true
	cfg.CornerRadius = 50

	opts := cfg.IconOptions()
	if opts.Start != (color.NRGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("Start = %v", opts.Start)
	}
	if opts.End != icon.DefaultEnd {
		t.Errorf("End = %v, want %v", opts.End, icon.DefaultEnd)
	}
	if !opts.Transparent || opts.CornerRadius != 50 {
		t.Errorf("opts = %+v", opts)
	}
	if opts.CenterOffsetY != icon.DefaultCenterOffsetY {
		t.Errorf("CenterOffsetY = %d", opts.CenterOffsetY)
	}
}

func TestDefaultMatchesIconDefaults(t *testing.T) {
	if got, want := Default().IconOptions(), icon.DefaultOptions(); got != want {
		t.Errorf("Default().IconOptions() = %+v, want %+v", got, want)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#6B46C1", color.NRGBA{107, 70, 193, 255}, false},
		{"06b6d4", color.NRGBA{6, 182, 212, 255}, false},
		{"#FFF", color.NRGBA{}, true},
		{"#12345G", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []color.NRGBA{icon.DefaultStart, icon.DefaultEnd, icon.DefaultStroke} {
		got, err := ParseHex(Hex(c))
		if err != nil || got != c {
			t.Errorf("ParseHex(Hex(%v)) = %v, %v", c, got, err)
		}
	}
}

func TestLoadExplicitPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(p, []byte(`{"output_dir": "custom"}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "custom" {
		t.Errorf("OutputDir = %q, want custom", cfg.OutputDir)
	}
	if cfg.Size != icon.DefaultSize {
		t.Errorf("Size = %d, want default", cfg.Size)
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(p, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(p)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("err = %v, want parsing error", err)
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	appdata := t.TempDir()
	t.Setenv("APPDATA", appdata)
	p := filepath.Join(appdata, paths.AppDirName, paths.ConfigFileName)
	if err := paths.AtomicWrite(p, []byte(`{"size": 800}`)); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Size != 800 {
		t.Errorf("Size = %d, want 800", cfg.Size)
	}
}

func TestLoadNoFileReturnsDefaults(t *testing.T) {
	t.Setenv("APPDATA", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != paths.DefaultOutputDir || len(cfg.Sizes) != 13 {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}
