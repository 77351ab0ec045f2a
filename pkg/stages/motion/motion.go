// Package motion implements the frame synthesis stage: it turns one base
// frame into an ordered frame sequence for a motion type.
package motion

import (
	"context"
	"fmt"
	"image"
	"math"
	"math/rand"

	"github.com/fogleman/gg"

	"github.com/user/emojigen/pkg/colorspace"
	"github.com/user/emojigen/pkg/pipeline"
	"github.com/user/emojigen/pkg/ports"
	"github.com/user/emojigen/pkg/raster"
)

// Animation constants.
const (
	DefaultFPS      = 20
	DefaultDuration = 1.0 // seconds per animation cycle

	shakeBaseAmplitude  = 5  // pixels at medium intensity
	bounceBaseAmplitude = 10 // pixels at medium intensity

	defaultShakeSeed = 42
)

// Option configures a Stage.
type Option func(*Stage)

// WithRandSource injects the random source factory used by the shake
// motion. Each synthesis draws from a fresh source so displacement
// sequences are reproducible.
func WithRandSource(newSource func() rand.Source) Option {
	return func(s *Stage) {
		s.newSource = newSource
	}
}

// WithTiming overrides the frame rate and cycle duration.
func WithTiming(fps int, duration float64) Option {
	return func(s *Stage) {
		s.fps = fps
		s.duration = duration
	}
}

// Stage synthesizes motion frames from a base frame.
type Stage struct {
	fps       int
	duration  float64
	newSource func() rand.Source
	logger    ports.Logger
}

// NewStage creates a new motion stage.
func NewStage(logger ports.Logger, opts ...Option) *Stage {
	s := &Stage{
		fps:      DefaultFPS,
		duration: DefaultDuration,
		newSource: func() rand.Source {
			return rand.NewSource(defaultShakeSeed)
		},
		logger: logger.WithComponent("motion"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FPS returns the configured frame rate.
func (s *Stage) FPS() int {
	return s.fps
}

// FrameCount returns the number of frames in one animation cycle at the
// given speed. Doubling the speed halves the count; the count is never
// below 1.
func (s *Stage) FrameCount(speed float64) int {
	adjusted := s.duration / speed
	n := int(float64(s.fps) * adjusted)
	if n < 1 {
		n = 1
	}
	return n
}

// Execute synthesizes the frame sequence for the requested motion.
func (s *Stage) Execute(ctx context.Context, input pipeline.MotionInput) (pipeline.MotionResult, error) {
	result := pipeline.MotionResult{}

	if input.Motion.Type == pipeline.MotionNone {
		result.Frames = []*image.NRGBA{input.Base}
		return result, nil
	}

	count := s.FrameCount(input.Motion.Speed)
	mult := input.Motion.Intensity.Multiplier()
	s.logger.Debug("Synthesizing %d %s frames", count, input.Motion.Type)

	switch input.Motion.Type {
	case pipeline.MotionShake:
		result.Frames = s.shakeFrames(input.Base, count, mult)
	case pipeline.MotionSpin:
		result.Frames = s.spinFrames(input.Base, count)
	case pipeline.MotionBounce:
		result.Frames = s.bounceFrames(input.Base, count, mult)
	case pipeline.MotionGaming:
		frames, err := s.gamingFrames(ctx, input, count)
		if err != nil {
			return result, err
		}
		result.Frames = frames
	default:
		return result, fmt.Errorf("unknown motion type: %d", input.Motion.Type)
	}

	return result, nil
}

// shakeFrames pastes the base frame at random integer displacements in
// [-amplitude, amplitude] on both axes.
func (s *Stage) shakeFrames(base *image.NRGBA, count int, mult float64) []*image.NRGBA {
	amplitude := int(math.Round(shakeBaseAmplitude * mult))
	rng := rand.New(s.newSource())

	frames := make([]*image.NRGBA, 0, count)
	for i := 0; i < count; i++ {
		dx := rng.Intn(2*amplitude+1) - amplitude
		dy := rng.Intn(2*amplitude+1) - amplitude
		frames = append(frames, raster.Offset(base, dx, dy))
	}
	return frames
}

// spinFrames rotates the base frame by 360*i/count degrees about the
// canvas center. The canvas size stays fixed; corners are cropped.
func (s *Stage) spinFrames(base *image.NRGBA, count int) []*image.NRGBA {
	bounds := base.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	frames := make([]*image.NRGBA, 0, count)
	for i := 0; i < count; i++ {
		if i == 0 {
			frames = append(frames, raster.Clone(base))
			continue
		}
		angle := 360.0 * float64(i) / float64(count)

		dc := gg.NewContext(w, h)
		// Counter-clockwise for positive angles.
		dc.RotateAbout(gg.Radians(-angle), float64(w)/2, float64(h)/2)
		dc.DrawImage(base, 0, 0)
		frames = append(frames, raster.ToNRGBA(dc.Image()))
	}
	return frames
}

// bounceFrames pastes the base frame at a sinusoidal vertical offset.
func (s *Stage) bounceFrames(base *image.NRGBA, count int, mult float64) []*image.NRGBA {
	amplitude := int(math.Round(bounceBaseAmplitude * mult))

	frames := make([]*image.NRGBA, 0, count)
	for i := 0; i < count; i++ {
		t := 2 * math.Pi * float64(i) / float64(count)
		dy := int(math.Round(math.Sin(t) * float64(amplitude)))
		frames = append(frames, raster.Offset(base, 0, dy))
	}
	return frames
}

// gamingFrames cycles the fill color hue through a full rotation. The
// re-render capability is preferred so outline and shadow stay correctly
// styled; without it the hue rotation is applied per pixel to the base
// frame, leaving alpha untouched.
func (s *Stage) gamingFrames(ctx context.Context, input pipeline.MotionInput, count int) ([]*image.NRGBA, error) {
	frames := make([]*image.NRGBA, 0, count)

	for i := 0; i < count; i++ {
		hueShift := 360.0 * float64(i) / float64(count)

		if input.Recolor != nil {
			fill := colorspace.RotateHue(input.TextColor, hueShift)
			frame, err := input.Recolor(ctx, fill)
			if err != nil {
				return nil, fmt.Errorf("recolor frame %d: %w", i, err)
			}
			frames = append(frames, frame)
			continue
		}

		frames = append(frames, rotateFrameHue(input.Base, hueShift))
	}

	return frames, nil
}

// rotateFrameHue applies a hue rotation to every non-transparent pixel.
func rotateFrameHue(base *image.NRGBA, degrees float64) *image.NRGBA {
	frame := raster.Clone(base)

	for i := 0; i < len(frame.Pix); i += 4 {
		if frame.Pix[i+3] == 0 {
			continue
		}
		rotated := colorspace.RotateHue(colorspace.RGB{
			R: frame.Pix[i],
			G: frame.Pix[i+1],
			B: frame.Pix[i+2],
		}, degrees)
		frame.Pix[i] = rotated.R
		frame.Pix[i+1] = rotated.G
		frame.Pix[i+2] = rotated.B
	}

	return frame
}

var _ pipeline.Stage[pipeline.MotionInput, pipeline.MotionResult] = (*Stage)(nil)
