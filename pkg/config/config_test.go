package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.MaxTextLength != 20 {
		t.Errorf("MaxTextLength = %d, want 20", cfg.MaxTextLength)
	}
	if cfg.MaxImageSizeKB != 1024 {
		t.Errorf("MaxImageSizeKB = %d, want 1024", cfg.MaxImageSizeKB)
	}
	if cfg.DefaultFontID != "noto_sans_jp_bold" {
		t.Errorf("DefaultFontID = %q, want \"noto_sans_jp_bold\"", cfg.DefaultFontID)
	}
	if cfg.FPS != 20 {
		t.Errorf("FPS = %d, want 20", cfg.FPS)
	}
	if cfg.DurationSec != 1.0 {
		t.Errorf("DurationSec = %v, want 1.0", cfg.DurationSec)
	}
	if cfg.SquareSize != 256 {
		t.Errorf("SquareSize = %d, want 256", cfg.SquareSize)
	}
	if cfg.StillQuality != 90 {
		t.Errorf("StillQuality = %d, want 90", cfg.StillQuality)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("max_image_size_kb: 512\nfps: 10\nfont_directory: /opt/fonts\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.MaxImageSizeKB != 512 {
		t.Errorf("MaxImageSizeKB = %d, want 512", cfg.MaxImageSizeKB)
	}
	if cfg.FPS != 10 {
		t.Errorf("FPS = %d, want 10", cfg.FPS)
	}
	if cfg.FontDirectory != "/opt/fonts" {
		t.Errorf("FontDirectory = %q, want \"/opt/fonts\"", cfg.FontDirectory)
	}
	// Unset keys keep their defaults.
	if cfg.MaxTextLength != 20 {
		t.Errorf("MaxTextLength = %d, want default 20", cfg.MaxTextLength)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFromFile() on a missing file expected error, got nil")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("fps: [not a number"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("LoadFromFile() on invalid YAML expected error, got nil")
	}
}

func TestConversions(t *testing.T) {
	cfg := Defaults()

	lc := cfg.ToLayoutConfig()
	if lc.SquareSize != cfg.SquareSize || lc.BannerFontSize != cfg.BannerFontSize {
		t.Errorf("ToLayoutConfig() = %+v, does not mirror %+v", lc, cfg)
	}
	if lc.ShadowOffset != 4 || lc.ShadowBlur != 5 {
		t.Errorf("ToLayoutConfig() shadow = (%d, %v), want (4, 5)", lc.ShadowOffset, lc.ShadowBlur)
	}

	oc := cfg.ToOrchestratorConfig()
	if oc.FPS != cfg.FPS || oc.MaxImageSizeKB != cfg.MaxImageSizeKB {
		t.Errorf("ToOrchestratorConfig() = %+v, does not mirror %+v", oc, cfg)
	}
}
