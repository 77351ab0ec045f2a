// Package emojigen provides a high-level API for rendering text emoji
// assets. It wires the font provider, pipeline stages and orchestrator
// from a single configuration.
package emojigen

import (
	"context"
	"fmt"

	"github.com/user/emojigen/pkg/adapters/apngencoder"
	"github.com/user/emojigen/pkg/adapters/webpencoder"
	"github.com/user/emojigen/pkg/config"
	"github.com/user/emojigen/pkg/fontdir"
	"github.com/user/emojigen/pkg/orchestrator"
	"github.com/user/emojigen/pkg/ports"
	"github.com/user/emojigen/pkg/stages/encode"
	"github.com/user/emojigen/pkg/stages/layout"
	"github.com/user/emojigen/pkg/stages/motion"
)

// Generator renders text emoji assets.
type Generator struct {
	cfg   config.Config
	fonts *fontdir.Provider
	orch  *orchestrator.Orchestrator
}

// New creates a Generator: scans the configured font directory and wires
// the pipeline. When the scan finds no fonts, the embedded Go Regular
// font is registered so the generator stays usable.
func New(cfg config.Config, fs ports.FileSystem, sink ports.DebugSink, logger ports.Logger) (*Generator, error) {
	fonts := fontdir.NewProvider()
	if err := fonts.ScanDirectory(cfg.FontDirectory, fs, logger.WithComponent("fonts")); err != nil {
		return nil, fmt.Errorf("scan fonts: %w", err)
	}
	if len(fonts.List()) == 0 {
		if err := fonts.RegisterBuiltin(); err != nil {
			return nil, fmt.Errorf("register builtin font: %w", err)
		}
	}

	layoutStage := layout.NewStage(fonts, cfg.ToLayoutConfig(), logger)
	motionStage := motion.NewStage(logger, motion.WithTiming(cfg.FPS, cfg.DurationSec))
	encodeStage := encode.NewStage(webpencoder.New(cfg.StillQuality), apngencoder.New(), logger)

	orch := orchestrator.New(layoutStage, motionStage, encodeStage, fonts, sink, logger, cfg.ToOrchestratorConfig())

	return &Generator{
		cfg:   cfg,
		fonts: fonts,
		orch:  orch,
	}, nil
}

// Render renders one request.
func (g *Generator) Render(ctx context.Context, req orchestrator.RenderRequest) (orchestrator.RenderResult, error) {
	return g.orch.Render(ctx, req)
}

// Fonts returns metadata for all available fonts.
func (g *Generator) Fonts() []ports.FontInfo {
	return g.fonts.List()
}

// DefaultFontID returns the configured default font identifier, falling
// back to the first available font when the configured one is missing.
func (g *Generator) DefaultFontID() string {
	if g.fonts.Exists(g.cfg.DefaultFontID) {
		return g.cfg.DefaultFontID
	}
	if list := g.fonts.List(); len(list) > 0 {
		return list[0].ID
	}
	return g.cfg.DefaultFontID
}

// CheckSizeLimit reports whether a payload of the given size is within
// the configured limit.
func (g *Generator) CheckSizeLimit(sizeBytes int) bool {
	return g.orch.CheckSizeLimit(sizeBytes)
}
