// Package main is a test program for rendering sample emoji assets.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/emojigen/pkg/adapters/logger"
	"github.com/user/emojigen/pkg/adapters/nullsink"
	"github.com/user/emojigen/pkg/adapters/osfilesystem"
	"github.com/user/emojigen/pkg/config"
	"github.com/user/emojigen/pkg/emojigen"
	"github.com/user/emojigen/pkg/orchestrator"
	"github.com/user/emojigen/pkg/pipeline"
	"github.com/user/emojigen/pkg/ports"
)

const (
	sampleText = "絵文\n字！"
	outDir     = "tmp/samples"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Recreate the output directory
	if err := os.RemoveAll(outDir); err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	// 2. Wire the generator with whatever fonts are on disk
	log := logger.NewConsole(ports.LevelInfo)
	gen, err := emojigen.New(config.Defaults(), osfilesystem.New(), nullsink.New(), log)
	if err != nil {
		return err
	}

	// 3. Render one sample per motion type
	motions := []pipeline.MotionType{
		pipeline.MotionNone,
		pipeline.MotionShake,
		pipeline.MotionSpin,
		pipeline.MotionBounce,
		pipeline.MotionGaming,
	}

	for _, m := range motions {
		req := orchestrator.RenderRequest{
			Text: sampleText,
			Style: pipeline.TextStyle{
				FontID:       gen.DefaultFontID(),
				TextColor:    "#E91E63",
				OutlineColor: "#FFFFFF",
				OutlineWidth: 4,
				Shadow:       m == pipeline.MotionNone,
			},
			Layout: pipeline.LayoutConfig{Mode: pipeline.ModeSquare, Alignment: pipeline.AlignCenter},
			Motion: pipeline.MotionConfig{Type: m, Intensity: pipeline.IntensityMedium, Speed: 1.0},
		}

		result, err := gen.Render(context.Background(), req)
		if err != nil {
			return fmt.Errorf("render %s: %w", m, err)
		}

		ext := ".png"
		if result.Format == pipeline.OutputStill {
			ext = ".webp"
		}
		path := filepath.Join(outDir, m.String()+ext)
		if err := os.WriteFile(path, result.Data, 0644); err != nil {
			return err
		}
		fmt.Printf("%-8s %8d bytes  %s\n", m, result.SizeBytes, path)
	}

	return nil
}
