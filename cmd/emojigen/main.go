// Package main provides the CLI entry point for emojigen.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/emojigen/pkg/adapters/filesink"
	"github.com/user/emojigen/pkg/adapters/logger"
	"github.com/user/emojigen/pkg/adapters/nullsink"
	"github.com/user/emojigen/pkg/adapters/osfilesystem"
	"github.com/user/emojigen/pkg/config"
	"github.com/user/emojigen/pkg/emojigen"
	"github.com/user/emojigen/pkg/orchestrator"
	"github.com/user/emojigen/pkg/pipeline"
	"github.com/user/emojigen/pkg/ports"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Render  RenderCmd  `cmd:"" help:"Render a text emoji as a WebP still or APNG animation."`
	Fonts   FontsCmd   `cmd:"" help:"List available fonts."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// RenderCmd defines the render subcommand.
type RenderCmd struct {
	// Required arguments
	Text   string `arg:"" help:"Text to render. Newlines (\\n) are supported."`
	Output string `short:"o" required:"" help:"Output file path (extension chosen by format when omitted)."`

	// Style options
	Font         string `short:"f" help:"Font identifier (default: configured default font)."`
	Color        string `short:"c" default:"#000000" help:"Text color (hex, e.g., #FF0000)."`
	OutlineColor string `default:"#FFFFFF" help:"Outline color (hex)."`
	OutlineWidth int    `default:"0" help:"Outline width in pixels (0-20)."`
	Shadow       bool   `help:"Draw a blurred drop shadow."`

	// Layout options
	Mode  string `default:"square" enum:"square,banner" help:"Canvas mode (square or banner)."`
	Align string `default:"center" enum:"left,center,right" help:"Horizontal text alignment."`

	// Motion options
	Motion    string  `short:"m" default:"none" enum:"none,shake,spin,bounce,gaming" help:"Motion type."`
	Intensity string  `default:"medium" enum:"low,medium,high" help:"Motion intensity."`
	Speed     float64 `default:"1.0" help:"Motion speed multiplier (0.1-5.0)."`

	// Configuration
	Config  string `help:"Path to YAML configuration file."`
	FontDir string `help:"Font directory (overrides configuration)."`
	MaxKB   int    `help:"Maximum output size in KB (overrides configuration)."`

	// Debug options
	Debug    bool   `short:"d" help:"Enable debug output."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// FontsCmd defines the fonts subcommand.
type FontsCmd struct {
	Config  string `help:"Path to YAML configuration file."`
	FontDir string `help:"Font directory (overrides configuration)."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("emojigen"),
		kong.Description("Render text as emoji-sized still images and animations."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the render command.
func (cmd *RenderCmd) Run() error {
	cfg, err := loadConfig(cmd.Config, cmd.FontDir)
	if err != nil {
		return err
	}
	if cmd.MaxKB > 0 {
		cfg.MaxImageSizeKB = cmd.MaxKB
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	// Edge validation; the core treats these as caller contracts.
	if len([]rune(cmd.Text)) == 0 || len([]rune(cmd.Text)) > cfg.MaxTextLength {
		return errors.New(l10n.F("text must be 1-%d characters", cfg.MaxTextLength))
	}
	if cmd.OutlineWidth < 0 || cmd.OutlineWidth > 20 {
		return errors.New(l10n.T("outline width must be between 0 and 20"))
	}
	if cmd.Speed < 0.1 || cmd.Speed > 5.0 {
		return errors.New(l10n.T("speed must be between 0.1 and 5.0"))
	}

	fs := osfilesystem.New()

	var sink ports.DebugSink
	if cmd.Debug {
		sink = filesink.New(cmd.DebugDir, fs)
	} else {
		sink = nullsink.New()
	}

	gen, err := emojigen.New(cfg, fs, sink, log)
	if err != nil {
		return err
	}

	req, err := cmd.buildRequest(gen)
	if err != nil {
		return err
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Interrupted, shutting down...")
		cancel()
	}()

	result, err := gen.Render(ctx, req)
	if err != nil {
		return err
	}

	outputPath := outputPathFor(cmd.Output, result.Format)
	if err := fs.WriteFile(outputPath, result.Data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info("Output saved to %s", outputPath)

	fmt.Printf("%s\t%s\t%.1f KB\t%s\n",
		outputPath, result.Format, float64(result.SizeBytes)/1024, result.Elapsed.Round(time.Millisecond))
	return nil
}

// buildRequest converts CLI flags into a render request.
func (cmd *RenderCmd) buildRequest(gen *emojigen.Generator) (orchestrator.RenderRequest, error) {
	req := orchestrator.RenderRequest{}

	mode, err := pipeline.ParseLayoutMode(cmd.Mode)
	if err != nil {
		return req, err
	}
	align, err := pipeline.ParseAlignment(cmd.Align)
	if err != nil {
		return req, err
	}
	motionType, err := pipeline.ParseMotionType(cmd.Motion)
	if err != nil {
		return req, err
	}
	intensity, err := pipeline.ParseIntensity(cmd.Intensity)
	if err != nil {
		return req, err
	}

	fontID := cmd.Font
	if fontID == "" {
		fontID = gen.DefaultFontID()
	}

	req.Text = strings.ReplaceAll(cmd.Text, `\n`, "\n")
	req.Style = pipeline.TextStyle{
		FontID:       fontID,
		TextColor:    cmd.Color,
		OutlineColor: cmd.OutlineColor,
		OutlineWidth: cmd.OutlineWidth,
		Shadow:       cmd.Shadow,
	}
	req.Layout = pipeline.LayoutConfig{Mode: mode, Alignment: align}
	req.Motion = pipeline.MotionConfig{Type: motionType, Intensity: intensity, Speed: cmd.Speed}
	return req, nil
}

// Run executes the fonts command.
func (cmd *FontsCmd) Run() error {
	cfg, err := loadConfig(cmd.Config, cmd.FontDir)
	if err != nil {
		return err
	}

	log := logger.NewConsole(ports.LevelWarn)
	gen, err := emojigen.New(cfg, osfilesystem.New(), nullsink.New(), log)
	if err != nil {
		return err
	}

	fmt.Printf("%-24s %-24s %s\n", "ID", "NAME", "CATEGORIES")
	for _, info := range gen.Fonts() {
		fmt.Printf("%-24s %-24s %s\n", info.ID, info.Name, strings.Join(info.Categories, ","))
	}
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("emojigen version %s", version))
	return nil
}

func loadConfig(path, fontDir string) (config.Config, error) {
	cfg := config.Defaults()
	if path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if fontDir != "" {
		cfg.FontDirectory = fontDir
	}
	return cfg, nil
}

// outputPathFor appends a format-appropriate extension when the output
// path has none: still output is WebP, animated output is APNG.
func outputPathFor(path string, format pipeline.OutputFormat) string {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".webp") || strings.HasSuffix(lower, ".png") || strings.HasSuffix(lower, ".apng") {
		return path
	}
	if format == pipeline.OutputStill {
		return path + ".webp"
	}
	return path + ".png"
}
