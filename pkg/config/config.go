// Package config provides configuration loading and management.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/emojigen/pkg/orchestrator"
	"github.com/user/emojigen/pkg/stages/layout"
)

// Config represents the full configuration for emojigen.
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"`

	// Text limits
	MaxTextLength int `yaml:"max_text_length"`

	// Output size limit (KB, inclusive)
	MaxImageSizeKB int `yaml:"max_image_size_kb"`

	// Fonts
	DefaultFontID string `yaml:"default_font_id"`
	FontDirectory string `yaml:"font_directory"`

	// Animation
	FPS         int     `yaml:"fps"`
	DurationSec float64 `yaml:"duration_sec"`

	// Layout
	SquareSize     int `yaml:"square_size"`
	MinFontSize    int `yaml:"min_font_size"`
	MaxFontSize    int `yaml:"max_font_size"`
	BannerFontSize int `yaml:"banner_font_size"`
	Padding        int `yaml:"padding"`

	// Shadow
	ShadowOffset int     `yaml:"shadow_offset"`
	ShadowBlur   float64 `yaml:"shadow_blur"`

	// Encoding
	StillQuality int `yaml:"still_quality"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		LogLevel: "info",

		MaxTextLength:  20,
		MaxImageSizeKB: 1024,

		DefaultFontID: "noto_sans_jp_bold",
		FontDirectory: "./assets/fonts",

		FPS:         20,
		DurationSec: 1.0,

		SquareSize:     256,
		MinFontSize:    10,
		MaxFontSize:    200,
		BannerFontSize: 64,
		Padding:        10,

		ShadowOffset: 4,
		ShadowBlur:   5,

		StillQuality: 90,

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file on top of defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ToLayoutConfig converts Config to layout.Config.
func (c Config) ToLayoutConfig() layout.Config {
	return layout.Config{
		SquareSize:     c.SquareSize,
		MinFontSize:    c.MinFontSize,
		MaxFontSize:    c.MaxFontSize,
		BannerFontSize: c.BannerFontSize,
		Padding:        c.Padding,
		ShadowOffset:   c.ShadowOffset,
		ShadowBlur:     c.ShadowBlur,
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		FPS:            c.FPS,
		MaxImageSizeKB: c.MaxImageSizeKB,
	}
}
