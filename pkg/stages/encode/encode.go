// Package encode implements the output container encoding stage.
package encode

import (
	"context"
	"fmt"
	"image"

	"github.com/user/emojigen/pkg/pipeline"
	"github.com/user/emojigen/pkg/ports"
)

// Stage serializes frames as a still image or an animated container.
type Stage struct {
	still  ports.StillEncoder
	anim   ports.AnimationEncoder
	logger ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(still ports.StillEncoder, anim ports.AnimationEncoder, logger ports.Logger) *Stage {
	return &Stage{
		still:  still,
		anim:   anim,
		logger: logger.WithComponent("encode"),
	}
}

// Execute encodes the frame sequence into the requested container.
// A single frame routed to the animated container is still valid; an
// empty sequence fails with ErrNoFrames.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if len(input.Frames) == 0 {
		return result, ErrNoFrames
	}

	select {
	case <-ctx.Done():
		return result, ctx.Err()
	default:
	}

	switch input.Format {
	case pipeline.OutputStill:
		data, err := s.still.EncodeStill(input.Frames[0])
		if err != nil {
			return result, fmt.Errorf("encode still: %w", err)
		}
		result.Data = data
		result.Format = pipeline.OutputStill

	case pipeline.OutputAnimated:
		frames := make([]image.Image, len(input.Frames))
		for i, f := range input.Frames {
			frames[i] = f
		}
		delayMs := 1000 / input.FPS
		data, err := s.anim.EncodeAnimation(frames, delayMs)
		if err != nil {
			return result, fmt.Errorf("encode animation: %w", err)
		}
		result.Data = data
		result.Format = pipeline.OutputAnimated

	default:
		return result, fmt.Errorf("unknown output format: %q", input.Format)
	}

	s.logger.Debug("Encoded %d frame(s) as %s: %d bytes", len(input.Frames), result.Format, len(result.Data))
	return result, nil
}

var _ pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult] = (*Stage)(nil)
