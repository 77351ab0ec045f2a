// Package orchestrator coordinates the rendering pipeline stages.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/user/emojigen/pkg/colorspace"
	"github.com/user/emojigen/pkg/pipeline"
	"github.com/user/emojigen/pkg/ports"
	"github.com/user/emojigen/pkg/stages/encode"
)

// Config contains the orchestrator configuration.
type Config struct {
	FPS            int // Frame rate for animated output (default: 20)
	MaxImageSizeKB int // Inclusive output size limit in KB (default: 1024)
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		FPS:            20,
		MaxImageSizeKB: 1024,
	}
}

// RenderRequest carries one rendering call's parameters.
type RenderRequest struct {
	Text   string
	Style  pipeline.TextStyle
	Layout pipeline.LayoutConfig
	Motion pipeline.MotionConfig
}

// RenderResult is the outcome of a render. It is transient and never
// persisted by the pipeline.
type RenderResult struct {
	Data      []byte
	Format    pipeline.OutputFormat
	SizeBytes int
	Elapsed   time.Duration
}

// Orchestrator sequences font check, layout, motion synthesis and
// encoding. Invocations are independent; the only shared state is the
// font provider's internal cache.
type Orchestrator struct {
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult]
	motionStage pipeline.Stage[pipeline.MotionInput, pipeline.MotionResult]
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	fonts       ports.FontProvider
	sink        ports.DebugSink
	logger      ports.Logger
	cfg         Config
}

// New creates a new Orchestrator.
func New(
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult],
	motionStage pipeline.Stage[pipeline.MotionInput, pipeline.MotionResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	fonts ports.FontProvider,
	sink ports.DebugSink,
	logger ports.Logger,
	cfg Config,
) *Orchestrator {
	return &Orchestrator{
		layoutStage: layoutStage,
		motionStage: motionStage,
		encodeStage: encodeStage,
		fonts:       fonts,
		sink:        sink,
		logger:      logger,
		cfg:         cfg,
	}
}

// Render executes the complete pipeline for one request.
func (o *Orchestrator) Render(ctx context.Context, req RenderRequest) (RenderResult, error) {
	start := time.Now()
	result := RenderResult{}

	// 1. Validation-class checks, before any drawing work.
	if !o.fonts.Exists(req.Style.FontID) {
		return result, fmt.Errorf("%w: %s", ports.ErrFontNotFound, req.Style.FontID)
	}

	textColor, err := colorspace.ParseHex(req.Style.TextColor)
	if err != nil {
		return result, err
	}
	if req.Style.OutlineWidth > 0 {
		if _, err := colorspace.ParseHex(req.Style.OutlineColor); err != nil {
			return result, err
		}
	}

	// 2. Base frame.
	o.logger.Debug("Rendering base frame for %q", req.Text)
	layout, err := o.layoutStage.Execute(ctx, pipeline.LayoutInput{
		Text:   req.Text,
		Style:  req.Style,
		Layout: req.Layout,
	})
	if err != nil {
		return result, o.failure("layout", err)
	}

	if o.sink.Enabled() {
		o.sink.SaveBaseFrame(layout.Frame)
	}

	// 3. Frame synthesis, branched by motion type.
	frames, format, err := o.synthesize(ctx, req, layout.Frame, textColor)
	if err != nil {
		return result, o.failure("motion", err)
	}

	if o.sink.Enabled() {
		for i, frame := range frames {
			o.sink.SaveMotionFrame(i, frame)
		}
	}

	// 4. Container encoding.
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Frames: frames,
		Format: format,
		FPS:    o.cfg.FPS,
	})
	if err != nil {
		return result, o.failure("encode", err)
	}

	if o.sink.Enabled() {
		ext := "png"
		if encoded.Format == pipeline.OutputStill {
			ext = "webp"
		}
		o.sink.SaveOutput(encoded.Data, ext)
	}

	result = RenderResult{
		Data:      encoded.Data,
		Format:    encoded.Format,
		SizeBytes: len(encoded.Data),
		Elapsed:   time.Since(start),
	}
	o.logger.Info("Rendered %s output: %d frame(s), %d bytes in %s",
		result.Format, len(frames), result.SizeBytes, result.Elapsed)

	// 5. Size-limit policy: report, never re-encode.
	if !o.CheckSizeLimit(result.SizeBytes) {
		return result, fmt.Errorf("%w: %d bytes > %d KB",
			ErrSizeLimitExceeded, result.SizeBytes, o.cfg.MaxImageSizeKB)
	}

	return result, nil
}

// synthesize produces the frame sequence and output format for the
// requested motion type.
func (o *Orchestrator) synthesize(
	ctx context.Context,
	req RenderRequest,
	base *image.NRGBA,
	textColor colorspace.RGB,
) ([]*image.NRGBA, pipeline.OutputFormat, error) {
	if req.Motion.Type == pipeline.MotionNone {
		return []*image.NRGBA{base}, pipeline.OutputStill, nil
	}

	input := pipeline.MotionInput{
		Base:      base,
		Motion:    req.Motion,
		TextColor: textColor,
	}
	if req.Motion.Type == pipeline.MotionGaming {
		// Gaming re-renders through the layout stage so outline and
		// shadow stay correctly styled for every hue.
		input.Recolor = func(ctx context.Context, fill colorspace.RGB) (*image.NRGBA, error) {
			res, err := o.layoutStage.Execute(ctx, pipeline.LayoutInput{
				Text:         req.Text,
				Style:        req.Style,
				Layout:       req.Layout,
				FillOverride: &fill,
			})
			if err != nil {
				return nil, err
			}
			return res.Frame, nil
		}
	}

	res, err := o.motionStage.Execute(ctx, input)
	if err != nil {
		return nil, "", err
	}
	return res.Frames, pipeline.OutputAnimated, nil
}

// CheckSizeLimit reports whether a payload of the given size is within
// the configured limit. The boundary is inclusive.
func (o *Orchestrator) CheckSizeLimit(sizeBytes int) bool {
	return CheckSizeLimit(sizeBytes, o.cfg.MaxImageSizeKB)
}

// CheckSizeLimit reports whether sizeBytes/1024 <= maxKB (inclusive).
func CheckSizeLimit(sizeBytes, maxKB int) bool {
	return sizeBytes <= maxKB*1024
}

// failure classifies a stage error. Known validation and contract errors
// propagate wrapped; anything else is logged in full and surfaced as an
// opaque ErrRenderFailure.
func (o *Orchestrator) failure(stage string, err error) error {
	switch {
	case errors.Is(err, ports.ErrFontNotFound),
		errors.Is(err, colorspace.ErrInvalidColor),
		errors.Is(err, encode.ErrNoFrames),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s stage: %w", stage, err)
	default:
		o.logger.Error("Unexpected failure in %s stage: %s", stage, err)
		return ErrRenderFailure
	}
}
